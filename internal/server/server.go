// Package server exposes the generation pipeline over HTTP.
//
// The server is a thin transport layer: requests are decoded into
// pipeline.Options, executed through a shared pipeline.Runner, and the
// results encoded back as JSON or raw artifact bytes. All policy lives in
// the pipeline; the handlers only translate between HTTP and pipeline
// types.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Achu067/PLANEXA/pkg/pipeline"
)

// Server wires the HTTP routes to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server around the given runner. A nil logger falls back to
// log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler builds the chi router with all routes and middleware attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests(s.logger))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Post("/generate", s.handleGenerate)
	r.Post("/export/png", s.handleExportPNG)
	r.Post("/export/pdf", s.handleExportPDF)

	return r
}

// Run starts the server on the configured port and blocks until ctx is
// canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
