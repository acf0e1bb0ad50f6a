package ocr

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Supported MIME types.
const (
	MimeJPEG = "image/jpeg"
	MimeJPG  = "image/jpg" // non-standard alias some clients send
	MimePNG  = "image/png"
	MimeWEBP = "image/webp"
	MimePDF  = "application/pdf"

	mimeOctetStream = "application/octet-stream"
)

// Format is the resolved media format used for dispatch. It is derived per
// request from the declared content type and filename; an unresolvable input
// yields ErrUnsupportedFormat, never a silent default.
type Format string

const (
	FormatJPEG Format = MimeJPEG
	FormatPNG  Format = MimePNG
	FormatWEBP Format = MimeWEBP
	FormatPDF  Format = MimePDF
)

// IsImage reports whether the format is handled by the image branch of the
// pipeline (everything but PDF).
func (f Format) IsImage() bool {
	return f != FormatPDF
}

// extToMime maps filename extensions to MIME types for uploads that arrive
// without a usable content type.
var extToMime = map[string]string{
	".jpg":  MimeJPEG,
	".jpeg": MimeJPEG,
	".png":  MimePNG,
	".webp": MimeWEBP,
	".pdf":  MimePDF,
}

// Resolve determines the effective format for an upload. A declared content
// type that names a supported format wins outright; an absent or generic
// octet-stream type falls back to the filename extension (case-insensitive).
// Both the validation stage and the extraction dispatch call this same
// function, so the two can never disagree.
func Resolve(declaredType, filename string) (Format, error) {
	mime := strings.ToLower(strings.TrimSpace(declaredType))

	if mime == "" || mime == mimeOctetStream {
		ext := strings.ToLower(filepath.Ext(filename))
		if mapped, ok := extToMime[ext]; ok {
			mime = mapped
		}
	}

	switch mime {
	case MimeJPEG, MimeJPG:
		return FormatJPEG, nil
	case MimePNG:
		return FormatPNG, nil
	case MimeWEBP:
		return FormatWEBP, nil
	case MimePDF:
		return FormatPDF, nil
	}

	return "", NewPipelineError("Resolve", ErrUnsupportedFormat,
		fmt.Sprintf("content type %q, filename %q", declaredType, filename))
}

// allowed reports whether the format appears in the configured allow-list of
// MIME strings. JPEG matches either of its spellings.
func (f Format) allowed(contentTypes []string) bool {
	for _, ct := range contentTypes {
		if ct == string(f) {
			return true
		}
		if f == FormatJPEG && ct == MimeJPG {
			return true
		}
	}
	return false
}
