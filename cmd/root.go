package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ocrtoolkit/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "ocrtoolkit",
	Short: "OCR Toolkit - text extraction and language detection for images and PDFs",
	Long: `OCR Toolkit extracts text from uploaded images (JPEG, PNG, WEBP) and PDF
documents and detects the languages present in the extracted text.

PDF pages with embedded text are read directly; pages without it are
rasterized and sent through OCR. Run "serve" to expose the HTTP API, or use
"extract" and "detect" to process local files from the command line.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("OCR Toolkit executed")

		fmt.Println("Welcome to OCR Toolkit!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
