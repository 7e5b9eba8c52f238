// Package cli implements the interactive MenuBoard admin console.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/avolkovs/menuboard/internal/auth"
	"github.com/avolkovs/menuboard/internal/config"
	"github.com/avolkovs/menuboard/internal/logging"
	"github.com/avolkovs/menuboard/internal/menu"
	"github.com/avolkovs/menuboard/internal/storage"
)

type App struct {
	config *config.Config
	log    logging.Logger
	auth   *auth.Store
	menu   *menu.Store
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	authStore := auth.NewStore(db, logger)
	authStore.Load(ctx)

	menuStore := menu.NewStore(db, logger)
	menuStore.Load(ctx)

	return &App{
		config: cfg,
		log:    logger,
		auth:   authStore,
		menu:   menuStore,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) status() string {
	sess := a.auth.Session()
	if sess.CurrentUser != nil {
		return "(" + sess.CurrentUser.Username + ")"
	}
	return ""
}
