package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/langdetect"
	"ocrtoolkit/internal/logger"
	"ocrtoolkit/internal/ocr"
	"ocrtoolkit/internal/pdf"
	"ocrtoolkit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the OCR Toolkit HTTP API",
	Long: `Start the HTTP server exposing the OCR Toolkit API:

  POST /extract-text     extract text from an uploaded image or PDF
  POST /detect-language  detect languages in an uploaded image or PDF
  GET  /health           service health check

Required environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string`,
	Example: `  # Serve on the configured port (default 8000)
  ocrtoolkit serve

  # Serve on a specific port
  PORT=9090 ocrtoolkit serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")
	cfg := config.Cached()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recognizer, err := ocr.NewVisionRecognizer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Vision recognizer")
		return fmt.Errorf("failed to create OCR recognizer: %w", err)
	}
	defer recognizer.Close()

	log.Info().Msg("Loading language detection models")
	detector := langdetect.New(cfg, langdetect.NewLinguaClassifier())

	pipeline := ocr.New(cfg, recognizer, pdf.NewEngine(cfg))
	srv := server.New(cfg, pipeline, detector)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("HTTP server failed")
			return err
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
			return err
		}
	}

	return nil
}
