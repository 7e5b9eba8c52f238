package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListItems(ctx context.Context, query string) error
	AddItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	ListCategories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the admin console.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands before login: help, register, login, exit.
// Commands after login: help, list [query], add, edit, delete, categories,
// addcat, delcat, stats, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "mb %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist [query], add, edit, delete, categories, addcat, delcat, stats, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.ListItems(ctx, strings.Join(args, " "))

		case "add":
			_ = a.AddItem(ctx)

		case "edit":
			_ = a.EditItem(ctx)

		case "delete":
			_ = a.DeleteItem(ctx)

		case "categories":
			_ = a.ListCategories(ctx)

		case "addcat":
			_ = a.AddCategory(ctx)

		case "delcat":
			_ = a.DeleteCategory(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
