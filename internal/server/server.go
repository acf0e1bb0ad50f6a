// Package server is the thin HTTP adapter over the extraction pipeline and
// the language detector. It translates multipart uploads into pipeline
// assets, pipeline errors into status codes, and results into wire models;
// no extraction or detection policy lives here.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/langdetect"
	"ocrtoolkit/internal/logger"
	"ocrtoolkit/internal/ocr"
)

// Extractor is the pipeline surface the handlers need.
type Extractor interface {
	Extract(ctx context.Context, asset ocr.Asset) (ocr.Result, error)
}

// LanguageDetector is the detection surface the handlers need.
type LanguageDetector interface {
	Detect(text string) langdetect.Result
}

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// New builds and wires all routes.
func New(cfg *config.Config, extractor Extractor, detector LanguageDetector) *Server {
	h := &handler{
		extractor: extractor,
		detector:  detector,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", h.root)
	r.Get("/health", h.health)
	r.Post("/extract-text", h.extractText)
	r.Post("/detect-language", h.detectLanguage)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		},
		log: logger.WithComponent("server"),
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
