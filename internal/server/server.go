// Package server exposes the exporter and extractor over a small HTTP API:
//
//	POST /api/export          export a palette in any supported format
//	POST /api/colors/extract  extract a palette-sized colour list from an image
//	GET  /api/presets         list built-in preset themes
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/theme"
)

// Server wraps an http.Server with the tincture API routes mounted.
type Server struct {
	httpServer *http.Server
	logger     hclog.Logger
}

// Options configures a Server.
type Options struct {
	Addr           string
	Logger         hclog.Logger
	ExtractTimeout time.Duration
}

// New builds a Server listening on opts.Addr.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	api := &apiHandler{
		logger:         logger.Named("api"),
		extractTimeout: opts.ExtractTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/export", api.handleExport)
	mux.HandleFunc("POST /api/colors/extract", api.handleExtract)
	mux.HandleFunc("GET /api/presets", api.handlePresets)

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           logRequests(logger, mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the mounted routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// presetEntry is one element of the GET /api/presets response.
type presetEntry struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

func listPresets() []presetEntry {
	names := theme.PresetNames()
	entries := make([]presetEntry, 0, len(names))
	for _, name := range names {
		p, _ := theme.Preset(name)
		colors := make(map[string]string, len(p))
		for role, hex := range p {
			colors[string(role)] = hex
		}
		entries = append(entries, presetEntry{Name: name, Colors: colors})
	}
	return entries
}

func logRequests(logger hclog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
