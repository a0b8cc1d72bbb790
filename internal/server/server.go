// Package server exposes the test case generators over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/projectdiscovery/gologger"

	"github.com/caseforge/caseforge"
)

type Server struct {
	router  *chi.Mux
	library *caseforge.Config
}

type Options func(*Server)

// WithLibrary overrides the scenario library used to resolve scenarios.
func WithLibrary(library *caseforge.Config) Options {
	return func(s *Server) {
		s.library = library
	}
}

// New creates the HTTP server with all routes registered.
func New(opts ...Options) *Server {
	s := &Server{
		router: chi.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(accessLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleHealth)
	s.router.Post("/generate-by-scenario", s.handleScenario)
	s.router.Post("/generate-combinations", s.handleCombinations)
	s.router.Get("/download-markdown", s.handleDownloadMarkdown)

	return s
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	gologger.Info().Msgf("listening on %v", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		gologger.Verbose().Msgf("%s %s %d %d %v", r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}
