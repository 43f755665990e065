package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/docshell/internal/navigation"
	"github.com/ziadkadry99/docshell/internal/session"
	"github.com/ziadkadry99/docshell/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins
	DevMode  bool // serve /livereload and tell pages to use it
	Product  string
	Logo     string
	Include  []string // page globs served; empty serves every page
	Exclude  []string // page globs hidden even when included
}

// Server serves the versioned documentation shell.
type Server struct {
	cfg        Config
	resolver   *navigation.Resolver
	renderer   *site.Renderer
	sessions   *session.Store
	logger     *zap.Logger
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a new server with all dependencies. sessions may be nil, in
// which case shell state is not remembered between requests.
func New(cfg Config, resolver *navigation.Resolver, renderer *site.Renderer, sessions *session.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		resolver: resolver,
		renderer: renderer,
		sessions: sessions,
		logger:   logger,
		hub:      NewHub(logger),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived, so outside the request timeout.
	if s.cfg.DevMode {
		r.Get("/livereload", s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		registerAssetRoutes(r)
		s.registerShellRoutes(r)
		s.registerAPIRoutes(r)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("docshell server listening",
		zap.String("addr", addr),
		zap.String("url", fmt.Sprintf("http://localhost:%d%s", s.cfg.Port, navigation.IndexPath(navigation.Latest))))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
