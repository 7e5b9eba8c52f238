// Package httpapi exposes the admin console as a JSON API over HTTP. It is a
// thin UI layer: requests are validated, dispatched to the stores, and the
// resulting state is reported back. Domain failures arrive through
// Session.Error, which the handlers translate into HTTP status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avolkovs/menuboard/internal/auth"
	"github.com/avolkovs/menuboard/internal/config"
	"github.com/avolkovs/menuboard/internal/logging"
	"github.com/avolkovs/menuboard/internal/menu"
	"github.com/gin-gonic/gin"
)

type Server struct {
	addr     string
	log      logging.Logger
	auth     *auth.Store
	menu     *menu.Store
	secret   []byte
	tokenTTL time.Duration
}

func NewServer(cfg *config.Config, log logging.Logger, authStore *auth.Store, menuStore *menu.Store) *Server {
	return &Server{
		addr:     cfg.EndpointAddr,
		log:      log.With("module", "httpapi"),
		auth:     authStore,
		menu:     menuStore,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.TokenValidityDuration,
	}
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.GET("/auth/session", s.session)

	protected := api.Group("", s.authRequired())
	protected.POST("/auth/logout", s.logout)
	protected.GET("/menu", s.getMenu)
	protected.POST("/menu/items", s.createItem)
	protected.PUT("/menu/items/:id", s.updateItem)
	protected.DELETE("/menu/items/:id", s.deleteItem)
	protected.GET("/menu/categories", s.listCategories)
	protected.POST("/menu/categories", s.createCategory)
	protected.DELETE("/menu/categories/:name", s.deleteCategory)
	protected.GET("/dashboard", s.dashboard)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router()}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
