package ocr

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"ocrtoolkit/internal/config"
)

// testConfig returns a config with the production defaults the core cares
// about, decoupled from the environment.
func testConfig() *config.Config {
	return &config.Config{
		MaxFileSize:                10 * 1024 * 1024,
		OCRConfidenceScore:         0.85,
		OCRNoTextConfidence:        0.0,
		PDFTextConfidence:          0.95,
		LanguageFallbackConfidence: 0.5,
		AllowedContentTypes:        []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "application/pdf"},
		FallbackLanguage:           "English",
		FallbackLanguageCode:       "en",
	}
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeGrayPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// makePNGHeader builds the 33-byte signature+IHDR prefix of a PNG declaring
// the given dimensions. DecodeConfig accepts it; a full decode would fail.
func makePNGHeader(width, height int) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 2 // truecolor

	var buf bytes.Buffer
	buf.Write(pngSignature)
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.WriteString("IHDR")
	buf.Write(ihdr)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(append([]byte("IHDR"), ihdr...)))
	return buf.Bytes()
}

// fakeRecognizer returns queued responses, then its default text.
type fakeRecognizer struct {
	queue []string
	text  string
	err   error
	calls int
}

func (f *fakeRecognizer) Recognize(ctx context.Context, image []byte) (string, bool, error) {
	f.calls++
	if f.err != nil {
		return "", false, f.err
	}
	text := f.text
	if len(f.queue) > 0 {
		text, f.queue = f.queue[0], f.queue[1:]
	}
	return text, len(bytes.TrimSpace([]byte(text))) > 0, nil
}

type fakePage struct {
	text      string
	renderErr error
}

type fakeDoc struct {
	pages  []fakePage
	width  float64
	height float64
	closed bool
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) PageDimensions(page int) (float64, float64, error) {
	if page < 1 || page > len(d.pages) {
		return 0, 0, fmt.Errorf("page %d out of range", page)
	}
	return d.width, d.height, nil
}

func (d *fakeDoc) PageText(page int) (string, error) {
	return d.pages[page-1].text, nil
}

func (d *fakeDoc) RenderPage(ctx context.Context, page int) ([]byte, error) {
	if err := d.pages[page-1].renderErr; err != nil {
		return nil, err
	}
	return []byte("raster-png"), nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

type fakeEngine struct {
	doc   *fakeDoc
	err   error
	opens int
}

func (e *fakeEngine) Open(data []byte) (Document, error) {
	e.opens++
	if e.err != nil {
		return nil, e.err
	}
	return e.doc, nil
}

var errEngineDown = errors.New("engine unavailable")

// pdfBytes is a stand-in PDF payload; structural parsing happens in the fake
// engine, so only the header matters.
var pdfBytes = []byte("%PDF-1.7 test payload for the fake engine")
