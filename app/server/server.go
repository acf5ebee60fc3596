// Package server provides the HTTP server for the blog UI and JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shelf/app/seed"
	"github.com/umputun/shelf/app/server/api"
	"github.com/umputun/shelf/app/server/web"
)

// Server represents the HTTP server.
type Server struct {
	store      Store
	cfg        Config
	version    string
	baseURL    string
	startedAt  time.Time
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// Store defines the storage operations the server and its handlers need.
// Defined here (consumer side) to allow different store implementations.
type Store interface {
	api.Store
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /blog)
	PageSize        int    // posts per page in web UI (0 = unlimited)
	Title           string // site title

	// admin api, disabled without a password hash
	AdminUser         string
	AdminPasswordHash string

	// seed file reimported on change when SeedWatch is set
	SeedFile  string
	SeedWatch bool

	// limits
	BodySizeLimit    int64 // max request body size in bytes
	RequestsPerSec   int64 // max requests per second
	AdminConcurrency int64 // max concurrent admin requests
}

// New creates a new Server instance.
// val and hs are optional, pass nil to disable snippet validation or the post archive.
func New(st Store, val api.SnippetValidator, hs api.HistoryService, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{
		store:     st,
		cfg:       cfg,
		version:   cfg.Version,
		baseURL:   cfg.BaseURL,
		startedAt: time.Now(),
		staticFS:  staticContent,
	}

	webHandler, err := web.New(st, web.Config{BaseURL: cfg.BaseURL, PageSize: cfg.PageSize, Title: cfg.Title})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler
	s.apiHandler = api.New(st, val, hs, api.Admin{User: cfg.AdminUser, PasswordHash: cfg.AdminPasswordHash})

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// start seed file watcher if enabled
	if s.cfg.SeedFile != "" && s.cfg.SeedWatch {
		if err := seed.NewWatcher(s.cfg.SeedFile, s.store).Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed watcher: %w", err)
		}
		log.Printf("[INFO] seed hot-reload enabled for %s", s.cfg.SeedFile)
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("shelf", "umputun", s.version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	router.HandleFunc("GET /health", s.handleHealth)

	// web UI routes
	router.Group().Route(func(webRouter *routegroup.Bundle) {
		s.webHandler.Register(webRouter)
	})

	// json api, admin writes get a stricter throttle
	router.Mount("/api/v1").Route(func(apiRouter *routegroup.Bundle) {
		s.apiHandler.Register(apiRouter)
		s.apiHandler.RegisterAdmin(apiRouter, rest.Throttle(s.adminConcurrency()))
	})

	return router
}

// bodySizeLimit returns the configured body size limit, or default 1MB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 1024 * 1024 // 1MB default
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// adminConcurrency returns the configured admin concurrency limit, or default 5 if not set.
func (s *Server) adminConcurrency() int64 {
	if s.cfg.AdminConcurrency > 0 {
		return s.cfg.AdminConcurrency
	}
	return 5 // default
}
