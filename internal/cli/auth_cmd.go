package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/avolkovs/menuboard/internal/auth"
	"github.com/avolkovs/menuboard/internal/validation"
)

// Register prompts for credentials, validates them, and dispatches to the
// credential store. The store's Session.Error is the single source of truth
// for the outcome; it is printed and then cleared, like any UI is expected
// to do.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	form := validation.AuthForm{Username: username, Password: password}
	if errs := validation.ValidateRegister(form, confirm); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	a.auth.Register(ctx, auth.User{Username: username, Password: password})
	a.reportSessionOutcome(ctx, "Registered and logged in as "+username)
	return nil
}

// Login prompts for credentials and authenticates against the registry.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	form := validation.AuthForm{Username: username, Password: password}
	if errs := validation.ValidateAuth(form); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	a.auth.Login(ctx, username, password)
	a.reportSessionOutcome(ctx, "Logged in as "+username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// reportSessionOutcome prints either the store error or the success message,
// clearing the error afterwards so it is not reported twice.
func (a *App) reportSessionOutcome(ctx context.Context, success string) {
	sess := a.auth.Session()
	if sess.Error != "" {
		fmt.Fprintln(a.out, sess.Error)
		a.auth.ClearError(ctx)
		return
	}
	fmt.Fprintln(a.out, success)
}

func (a *App) printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintln(a.out, errs[f])
	}
}
