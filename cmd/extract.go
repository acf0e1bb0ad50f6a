package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/logger"
	"ocrtoolkit/internal/ocr"
	"ocrtoolkit/internal/pdf"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract text from an image or PDF file",
	Long: `Process a local image (JPEG, PNG, WEBP) or PDF file and print the
extracted text. The format is resolved from the file extension; PDF pages
with embedded text are read directly and the rest are rasterized and OCRed.

Required environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string`,
	Example: `  # Extract text from a scan to stdout
  ocrtoolkit extract scan.png

  # Extract from a PDF as JSON, with a custom timeout
  ocrtoolkit extract report.pdf --json --timeout 600`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

// extractOutput is the JSON output structure when --json is used.
type extractOutput struct {
	Text           string  `json:"text"`
	Confidence     float64 `json:"confidence"`
	ProcessingTime float64 `json:"processing_time"`
	FileName       string  `json:"file_name"`
	FileSize       int64   `json:"file_size"`
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Bool("json", false, "Output as JSON")
	extractCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	jsonOutput, _ := cmd.Flags().GetBool("json")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")
	path := args[0]

	result, err := runPipelineOnFile(path, timeoutSecs)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Extraction failed")
		return err
	}

	log.Info().
		Str("file", path).
		Float64("confidence", result.Confidence).
		Float64("elapsed_s", result.ElapsedSeconds).
		Msg("Extraction complete")

	if jsonOutput {
		info, _ := os.Stat(path)
		var size int64
		if info != nil {
			size = info.Size()
		}
		return json.NewEncoder(os.Stdout).Encode(extractOutput{
			Text:           result.Text,
			Confidence:     result.Confidence,
			ProcessingTime: result.ElapsedSeconds,
			FileName:       path,
			FileSize:       size,
		})
	}

	fmt.Println(result.Text)
	fmt.Fprintf(os.Stderr, "confidence: %.2f, elapsed: %.2fs\n", result.Confidence, result.ElapsedSeconds)
	return nil
}

// runPipelineOnFile wires the production engines and runs one extraction,
// resolving the format from the file extension alone.
func runPipelineOnFile(path string, timeoutSecs int) (ocr.Result, error) {
	cfg := config.Cached()

	data, err := os.ReadFile(path)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("failed to read file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)
	defer cancel()

	recognizer, err := ocr.NewVisionRecognizer(ctx)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("failed to create OCR recognizer: %w", err)
	}
	defer recognizer.Close()

	pipeline := ocr.New(cfg, recognizer, pdf.NewEngine(cfg))

	return pipeline.Extract(ctx, ocr.Asset{
		Data:     data,
		Filename: path,
	})
}
