// Package server provides the HTTP server for the theme web UI and API.
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

	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/server/api"
	"github.com/umputun/dusk/app/server/internal"
	"github.com/umputun/dusk/app/server/web"
	"github.com/umputun/dusk/app/store"
)

// KVStore defines the interface for key-value storage operations.
// Defined here (consumer side) to allow different store implementations.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Lister lists stored entries by key prefix.
type Lister interface {
	List(ctx context.Context, prefix string) ([]store.Entry, error)
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	version    string
	baseURL    string
	apiHandler *api.Handler
	webHandler *web.Handler
	adminAuth  *AdminAuth
	staticFS   fs.FS // embedded static files
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string       // base URL path for reverse proxy (e.g., /dusk)
	Persist         enum.Persist // where browser preferences live
	SecureCookies   bool         // set Secure on cookies, for https deployments
	AdminHash       string       // bcrypt hash guarding admin routes and the client header (empty = both off)

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
// st is used in db persist mode only and may be nil in cookie mode. lister is optional
// and enables the client preferences listing.
func New(st KVStore, lister Lister, cfg Config) (*Server, error) {
	if cfg.Persist == enum.PersistDB && st == nil {
		return nil, errors.New("store is required for db persist mode")
	}

	adminAuth, err := NewAdminAuth(cfg.AdminHash)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize admin auth: %w", err)
	}

	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		version:   cfg.Version,
		baseURL:   cfg.BaseURL,
		staticFS:  staticContent,
		adminAuth: adminAuth,
	}

	resolver := &internal.Resolver{
		KV:          st,
		Persist:     cfg.Persist,
		CookiePath:  s.cookiePath(),
		Secure:      cfg.SecureCookies,
		TrustHeader: adminAuth.Authorized, // only admins may act on behalf of another client
	}

	webHandler, err := web.New(resolver, web.Config{BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler

	var apiLister api.Lister
	switch {
	case lister == nil || cfg.Persist != enum.PersistDB:
	case !adminAuth.Enabled():
		log.Printf("[INFO] admin hash not set, client listing disabled")
	default:
		apiLister = lister
	}
	s.apiHandler = api.New(resolver, apiLister)
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

	log.Printf("[DEBUG] started server on %s, persist=%s", s.cfg.Address, s.cfg.Persist)
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

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("dusk", "umputun", s.version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))

	router.Group().Route(func(webRouter *routegroup.Bundle) {
		s.webHandler.Register(webRouter)
	})

	router.Mount("/api/v1").Route(func(apiRouter *routegroup.Bundle) {
		s.apiHandler.Register(apiRouter)
		apiRouter.Group().Route(func(admin *routegroup.Bundle) {
			admin.Use(s.adminAuth.Middleware)
			s.apiHandler.RegisterAdmin(admin)
		})
	})

	return router
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (s *Server) cookiePath() string {
	if s.baseURL == "" {
		return "/"
	}
	return s.baseURL + "/"
}
