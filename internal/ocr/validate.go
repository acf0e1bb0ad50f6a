package ocr

import (
	"bytes"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/logger"

	// Register decoders for the supported image formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Structural limits. These are safety bounds on what the engines are asked to
// process, not tunables, so they are fixed rather than configured.
const (
	// minFileSize is the smallest byte count any supported format can occupy.
	minFileSize = 10

	// minPNGSize is the smallest structurally complete PNG file.
	minPNGSize = 33

	// maxPDFPages bounds the per-request rasterization work.
	maxPDFPages = 100

	// maxPDFDimension is the largest accepted page edge in points (200
	// inches at 72 DPI).
	maxPDFDimension = 14400

	// maxImageDimension is the largest accepted image edge in pixels.
	maxImageDimension = 20000
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Validator authenticates that uploaded bytes genuinely are the claimed
// format and are structurally safe to hand to the extraction engines. It
// rejects corrupt and oversized input before any expensive processing runs;
// no extraction work begins on a document that fails here.
type Validator struct {
	cfg *config.Config
	pdf PDFEngine
	log zerolog.Logger
}

// NewValidator creates a validator. The PDF engine is only consulted for the
// structural parse of PDF uploads.
func NewValidator(cfg *config.Config, pdf PDFEngine) *Validator {
	return &Validator{
		cfg: cfg,
		pdf: pdf,
		log: logger.WithComponent("validator"),
	}
}

// Validate checks the upload against the byte limit, the format-specific
// signature, and the structural limits for the resolved format. Any violation
// produces a typed failure naming the offending check; nothing partial is
// returned.
func (v *Validator) Validate(data []byte, format Format) error {
	const op = "Validate"

	if len(data) == 0 {
		return NewPipelineError(op, ErrInvalidInput, "empty file content")
	}
	if len(data) < minFileSize {
		return NewPipelineError(op, ErrInvalidInput, "file too small to be valid")
	}
	if int64(len(data)) > v.cfg.MaxFileSize {
		return NewPipelineError(op, ErrOversizedInput,
			fmt.Sprintf("file size %d exceeds limit %d", len(data), v.cfg.MaxFileSize))
	}

	switch format {
	case FormatJPEG:
		if err := validateJPEGSignature(data); err != nil {
			return err
		}
	case FormatPNG:
		if err := validatePNGSignature(data); err != nil {
			return err
		}
	case FormatWEBP:
		if err := validateWEBPSignature(data); err != nil {
			return err
		}
	case FormatPDF:
		return v.validatePDF(data)
	default:
		return NewPipelineError(op, ErrUnsupportedFormat, string(format))
	}

	return v.verifyImage(data)
}

func validateJPEGSignature(data []byte) error {
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) ||
		!bytes.HasSuffix(data, []byte{0xFF, 0xD9}) {
		return NewPipelineError("Validate", ErrCorruptStructure, "invalid JPEG signature")
	}
	return nil
}

func validatePNGSignature(data []byte) error {
	if !bytes.HasPrefix(data, pngSignature) {
		return NewPipelineError("Validate", ErrCorruptStructure, "invalid PNG signature")
	}
	if len(data) < minPNGSize {
		return NewPipelineError("Validate", ErrCorruptStructure, "PNG file truncated")
	}
	return nil
}

func validateWEBPSignature(data []byte) error {
	// The WEBP marker sits at bytes 8..12 of the RIFF header.
	if len(data) < 12 || !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Contains(data[:12], []byte("WEBP")) {
		return NewPipelineError("Validate", ErrCorruptStructure, "invalid WEBP signature")
	}
	return nil
}

// verifyImage runs the decode-and-verify pass: the decoder must accept the
// bytes and the decoded dimensions must stay within bounds. A suspiciously
// small byte count for the claimed dimensions is logged but tolerated; the
// size heuristic is permissive while signatures and structure stay strict.
func (v *Validator) verifyImage(data []byte) error {
	const op = "Validate"

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return NewPipelineError(op, ErrCorruptStructure, fmt.Sprintf("image decode: %v", err))
	}
	if cfg.Width > maxImageDimension || cfg.Height > maxImageDimension {
		return NewPipelineError(op, ErrOversizedInput,
			fmt.Sprintf("image dimensions %dx%d exceed limit %d", cfg.Width, cfg.Height, maxImageDimension))
	}

	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return NewPipelineError(op, ErrCorruptStructure, fmt.Sprintf("image decode: %v", err))
	}

	if len(data) < cfg.Width*cfg.Height/100 {
		v.log.Warn().
			Int("bytes", len(data)).
			Int("width", cfg.Width).
			Int("height", cfg.Height).
			Msg("Suspiciously small file size for image dimensions")
	}

	return nil
}

// validatePDF checks the PDF header and runs the structural parse through the
// engine: the document must open, report 1..maxPDFPages pages, and have a
// readable first page within the dimension limit.
func (v *Validator) validatePDF(data []byte) error {
	const op = "Validate"

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return NewPipelineError(op, ErrCorruptStructure, "missing PDF header")
	}

	doc, err := v.pdf.Open(data)
	if err != nil {
		return NewPipelineError(op, ErrCorruptStructure, fmt.Sprintf("PDF parse: %v", err))
	}
	defer doc.Close()

	pages := doc.PageCount()
	if pages == 0 {
		return NewPipelineError(op, ErrCorruptStructure, "PDF has no pages")
	}
	if pages > maxPDFPages {
		return NewPipelineError(op, ErrOversizedInput,
			fmt.Sprintf("PDF has %d pages (limit %d)", pages, maxPDFPages))
	}

	width, height, err := doc.PageDimensions(1)
	if err != nil {
		return NewPipelineError(op, ErrCorruptStructure, fmt.Sprintf("unreadable first page: %v", err))
	}
	if width > maxPDFDimension || height > maxPDFDimension {
		return NewPipelineError(op, ErrOversizedInput,
			fmt.Sprintf("PDF page dimensions %.0fx%.0f exceed limit %d", width, height, maxPDFDimension))
	}

	return nil
}
