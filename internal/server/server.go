// Package server serves the portfolio: rendered listing and case-study
// pages, the live gallery socket, shared static files and the site's own
// data and assets.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/live"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port       int
	SiteDir    string // holds data/ and assets/
	DetailPath string // route of the query-driven case-study page
	AllowAll   bool   // allow all CORS and websocket origins (dev mode)
}

// Server renders pages on every request from a fresh load of the dataset.
type Server struct {
	cfg        Config
	skeletons  *site.Skeletons
	listing    *page.Listing
	detail     *page.Detail // served at DetailPath
	slugDetail *page.Detail // served at /projects/{slug}
	registry   *live.Registry
	live       *live.Handler
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. A nil logger discards logs.
func New(cfg Config, loader portfolio.ProjectLoader, skeletons *site.Skeletons, registry *live.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.DetailPath = strings.TrimPrefix(cfg.DetailPath, "/")

	s := &Server{
		cfg:        cfg,
		skeletons:  skeletons,
		listing:    page.NewListing(loader, render.QueryLinker(cfg.DetailPath), logger),
		detail:     page.NewDetail(loader, BasePath(cfg.DetailPath), logger),
		slugDetail: page.NewDetail(loader, "../", logger),
		registry:   registry,
		live:       live.NewHandler(registry, cfg.AllowAll, logger),
		logger:     logger,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

const slugRoutePrefix = "projects/"

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
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Live gallery sessions outlive any request timeout.
	r.Handle("/ws/gallery", s.live)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", s.handleIndex)
		r.Get("/index.html", s.handleIndex)
		r.Get("/"+s.cfg.DetailPath, s.handleDetail)
		r.Get("/"+slugRoutePrefix+"{slug}", s.handleProject)

		r.Get("/static/{name}", s.handleStatic)

		files := http.FileServer(http.Dir(s.cfg.SiteDir))
		for _, dir := range site.PublishedDirs {
			r.Handle("/"+dir+"/*", files)
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	s.logger.Info("folio server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server and ends live gallery sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	s.live.Close()
	return s.httpServer.Shutdown(ctx)
}

// BasePath is the relative prefix from a page at rel back to the site root,
// e.g. "../" for "projects/project.html".
func BasePath(rel string) string {
	return strings.Repeat("../", strings.Count(strings.Trim(rel, "/"), "/"))
}
