package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// Deps are the collaborators the handlers are built from.
type Deps struct {
	Database database.Database
	Notifier formNotifier
	Media    services.MediaStore
}

func NewServer(cfg config.Config, deps Deps) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	startupTime := time.Now()

	router := newRouter(deps, withConfig(cfg), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.Config
	startupTime time.Time
}

func withConfig(c config.Config) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Deps, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}
	cfg := router.config

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.StripSlashes)
	chiRouter.Use(RequestID)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(CORSCheckMiddleware(cfg.AcceptedOrigins))
	chiRouter.Use(corsMiddleware(cfg.AcceptedOrigins))
	chiRouter.Use(HTTPLoggingMiddleware(cfg.LogPretty))

	handlers := initializeHandlers(deps.Database, deps.Notifier, deps.Media, cfg)

	chiRouter.Get("/health", health(router.startupTime))
	setupPublicRoutes(chiRouter, handlers)

	if cfg.Admin.Enabled() {
		setupAdminRoutes(chiRouter, handlers, newAuthMiddleware(cfg.Admin.JWTSecret))
	} else {
		log.Warn().Msg("ADMIN_PASSWORD_HASH or ADMIN_JWT_SECRET not set, admin console disabled")
	}

	if local, ok := deps.Media.(*services.LocalMediaStore); ok && strings.HasPrefix(cfg.Media.URL, "/") {
		fs := http.StripPrefix(cfg.Media.URL, http.FileServer(http.Dir(local.Root())))
		chiRouter.Handle(cfg.Media.URL+"*", fs)
	}

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
