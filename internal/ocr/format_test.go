package ocr

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		declared string
		filename string
		want     Format
	}{
		{"image/jpeg", "", FormatJPEG},
		{"image/jpg", "", FormatJPEG},
		{"image/png", "", FormatPNG},
		{"image/webp", "", FormatWEBP},
		{"application/pdf", "", FormatPDF},
		// Absent or generic declared type falls back to the extension.
		{"", "photo.jpg", FormatJPEG},
		{"", "photo.JPEG", FormatJPEG},
		{"", "scan.PDF", FormatPDF},
		{"application/octet-stream", "pic.png", FormatPNG},
		{"application/octet-stream", "pic.WebP", FormatWEBP},
		// A supported declared type wins over a conflicting extension.
		{"image/png", "file.jpg", FormatPNG},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.declared, tt.filename)
		if err != nil {
			t.Errorf("Resolve(%q, %q): %v", tt.declared, tt.filename, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.declared, tt.filename, got, tt.want)
		}
	}
}

func TestResolveRoundTrip(t *testing.T) {
	byExt, err := Resolve("", "scan.PDF")
	if err != nil {
		t.Fatal(err)
	}
	byType, err := Resolve("application/pdf", "")
	if err != nil {
		t.Fatal(err)
	}
	if byExt != byType {
		t.Errorf("extension and declared-type resolution disagree: %q vs %q", byExt, byType)
	}
}

func TestResolveUnsupported(t *testing.T) {
	tests := []struct {
		declared string
		filename string
	}{
		{"", ""},
		{"", "notes.txt"},
		{"text/plain", "notes.txt"},
		{"application/octet-stream", "archive.zip"},
		// Unsupported declared type does not fall back to the extension.
		{"image/tiff", "photo.jpg"},
	}

	for _, tt := range tests {
		_, err := Resolve(tt.declared, tt.filename)
		if err == nil {
			t.Errorf("Resolve(%q, %q): expected error", tt.declared, tt.filename)
			continue
		}
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Resolve(%q, %q) = %v, want ErrUnsupportedFormat", tt.declared, tt.filename, err)
		}
	}
}

func TestFormatAllowed(t *testing.T) {
	all := []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "application/pdf"}

	for _, f := range []Format{FormatJPEG, FormatPNG, FormatWEBP, FormatPDF} {
		if !f.allowed(all) {
			t.Errorf("%q should be allowed by the default list", f)
		}
	}

	// The non-standard image/jpg spelling alone still admits JPEG.
	if !FormatJPEG.allowed([]string{"image/jpg"}) {
		t.Error("image/jpg alone should admit JPEG")
	}
	if FormatPNG.allowed([]string{"application/pdf"}) {
		t.Error("PNG should not be allowed by a PDF-only list")
	}
}
