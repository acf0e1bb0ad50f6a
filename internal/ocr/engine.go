// Package ocr implements the upload processing core: file validation, format
// dispatch, text extraction, and confidence aggregation.
//
// The heavy lifting is delegated to two external engines consumed through the
// interfaces below: a Recognizer that reads text out of raster images (bound
// to Google Cloud Vision in production) and a PDFEngine that parses document
// structure, extracts embedded text, and rasterizes pages (bound to pdfcpu
// plus pdftoppm in internal/pdf). The pipeline itself owns only the policy:
// which engine to call, how to blend per-page confidence, and how failures
// are classified.
package ocr

import "context"

// Recognizer extracts text from a single raster image.
type Recognizer interface {
	// Recognize runs text recognition on an encoded image (JPEG, PNG, or
	// WEBP bytes). found reports whether any text remained after trimming
	// whitespace. Engine failures are returned as errors and are never
	// retried by the caller.
	Recognize(ctx context.Context, image []byte) (text string, found bool, err error)
}

// Document is one successfully parsed PDF. Page numbers are 1-based.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageDimensions returns the width and height of a page in points.
	PageDimensions(page int) (width, height float64, err error)

	// PageText returns the embedded text of a page, or "" if the page
	// carries no extractable text.
	PageText(page int) (string, error)

	// RenderPage rasterizes a page to an encoded PNG image.
	RenderPage(ctx context.Context, page int) ([]byte, error)

	// Close releases any resources held by the document.
	Close() error
}

// PDFEngine opens PDF documents for structural inspection and extraction.
type PDFEngine interface {
	Open(data []byte) (Document, error)
}
