package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/logger"
)

// Asset is one uploaded file for a single request. The byte buffer is owned
// exclusively by the pipeline invocation and is never persisted.
type Asset struct {
	Data        []byte
	ContentType string // declared MIME type; may be empty or octet-stream
	Filename    string // may be empty
}

// Result is the outcome of a successful extraction.
type Result struct {
	Text           string
	Confidence     float64
	ElapsedSeconds float64
}

// Pipeline is the single entry point for text extraction: it resolves the
// effective format, validates the bytes, dispatches to the PDF or image
// branch, and applies the empty-text placeholder policy.
type Pipeline struct {
	cfg        *config.Config
	recognizer Recognizer
	pdf        PDFEngine
	validator  *Validator
	log        zerolog.Logger
}

// New creates a pipeline wired to the given engines.
func New(cfg *config.Config, recognizer Recognizer, pdf PDFEngine) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		recognizer: recognizer,
		pdf:        pdf,
		validator:  NewValidator(cfg, pdf),
		log:        logger.WithComponent("pipeline"),
	}
}

// Extract validates the asset and produces its text, confidence, and elapsed
// wall-clock time. The elapsed time is informational only.
func (p *Pipeline) Extract(ctx context.Context, asset Asset) (Result, error) {
	start := time.Now()

	format, err := Resolve(asset.ContentType, asset.Filename)
	if err != nil {
		return Result{}, err
	}
	if !format.allowed(p.cfg.AllowedContentTypes) {
		return Result{}, NewPipelineError("Extract", ErrUnsupportedFormat,
			fmt.Sprintf("content type %q not in allow-list", string(format)))
	}

	if err := p.validator.Validate(asset.Data, format); err != nil {
		return Result{}, err
	}

	var text string
	var confidence float64
	if format == FormatPDF {
		text, confidence, err = p.extractPDF(ctx, asset)
	} else {
		text, confidence, err = p.extractImage(ctx, asset.Data, asset.Filename)
	}
	if err != nil {
		return Result{}, err
	}

	// Zero extractable text on a valid input is a successful outcome with
	// degraded content, never an error.
	if strings.TrimSpace(text) == "" {
		text = fmt.Sprintf("No readable text found in %s. The image may be too blurry, have poor quality, or contain no text.", asset.Filename)
		confidence = 0.0
	}

	elapsed := time.Since(start)
	p.log.Debug().
		Str("filename", asset.Filename).
		Str("format", string(format)).
		Float64("confidence", confidence).
		Dur("elapsed", elapsed).
		Msg("Extraction complete")

	return Result{
		Text:           text,
		Confidence:     confidence,
		ElapsedSeconds: elapsed.Seconds(),
	}, nil
}

// extractPDF iterates pages in order. Embedded text is preferred and scored
// with the fixed PDF-text confidence; pages without it are rasterized and run
// through the image branch. Pages whose recognition comes back empty
// contribute no unit, so they neither add text nor drag down the average.
func (p *Pipeline) extractPDF(ctx context.Context, asset Asset) (string, float64, error) {
	const op = "ExtractPDF"

	doc, err := p.pdf.Open(asset.Data)
	if err != nil {
		// The validator already parsed this document; a failure here is an
		// engine problem, not a bad upload.
		return "", 0, NewPipelineError(op, ErrProcessingFailed,
			fmt.Sprintf("reopen %s: %v", asset.Filename, err))
	}
	defer doc.Close()

	var units []Unit
	for page := 1; page <= doc.PageCount(); page++ {
		pageText, err := doc.PageText(page)
		if err != nil {
			return "", 0, NewPipelineError(op, ErrProcessingFailed,
				fmt.Sprintf("page %d of %s: %v", page, asset.Filename, err))
		}

		if strings.TrimSpace(pageText) != "" {
			units = append(units, Unit{
				Text:       strings.TrimSpace(pageText),
				Source:     SourceEmbeddedText,
				Confidence: p.cfg.PDFTextConfidence,
			})
			continue
		}

		raster, err := doc.RenderPage(ctx, page)
		if err != nil {
			return "", 0, NewPipelineError(op, ErrProcessingFailed,
				fmt.Sprintf("rasterize page %d of %s: %v", page, asset.Filename, err))
		}

		name := fmt.Sprintf("%s_page_%d", asset.Filename, page)
		ocrText, ocrConfidence, err := p.recognize(ctx, raster, name)
		if err != nil {
			return "", 0, err
		}
		if strings.TrimSpace(ocrText) != "" {
			units = append(units, Unit{
				Text:       strings.TrimSpace(ocrText),
				Source:     SourceRecognized,
				Confidence: ocrConfidence,
			})
		}
	}

	text, confidence := Combine(units)
	return text, confidence, nil
}

// extractImage normalizes the color mode and runs recognition with the
// engine's default settings. No format-specific tuning is applied.
func (p *Pipeline) extractImage(ctx context.Context, data []byte, filename string) (string, float64, error) {
	normalized, err := normalizeColorMode(data)
	if err != nil {
		return "", 0, NewPipelineError("ExtractImage", ErrProcessingFailed,
			fmt.Sprintf("prepare %s: %v", filename, err))
	}
	return p.recognize(ctx, normalized, filename)
}

// recognize invokes the recognition engine once. Confidence is binary by
// policy: the found score if trimmed text came back, the no-text score
// otherwise. Engine failures are surfaced, never retried.
func (p *Pipeline) recognize(ctx context.Context, image []byte, name string) (string, float64, error) {
	text, found, err := p.recognizer.Recognize(ctx, image)
	if err != nil {
		return "", 0, NewPipelineError("Recognize", ErrProcessingFailed,
			fmt.Sprintf("failed to process %s: %v", name, err))
	}

	text = strings.TrimSpace(text)
	if !found || text == "" {
		return text, p.cfg.OCRNoTextConfidence, nil
	}
	return text, p.cfg.OCRConfidenceScore, nil
}
