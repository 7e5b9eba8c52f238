package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avolkovs/menuboard/internal/auth"
	"github.com/avolkovs/menuboard/internal/config"
	"github.com/avolkovs/menuboard/internal/logging"
	"github.com/avolkovs/menuboard/internal/menu"
	"github.com/avolkovs/menuboard/internal/storage"
)

// App wires storage, stores and the HTTP server together for cmd/server.
type App struct {
	config *config.Config
	log    logging.Logger
	server *Server
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	authStore := auth.NewStore(db, logger)
	authStore.Load(ctx)

	menuStore := menu.NewStore(db, logger)
	menuStore.Load(ctx)

	srv := NewServer(cfg, logger, authStore, menuStore)

	return &App{config: cfg, log: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.log.Info(ctx, "Starting app...")
	app.initSignalHandler(cancel)

	if err := app.server.Run(ctx); err != nil {
		app.log.Error(ctx, err.Error())
	}
}
