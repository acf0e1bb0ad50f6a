package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// normalizeColorMode re-encodes images whose decoded color model is not a
// standard 3-channel one (grayscale, paletted, CMYK) as RGB-backed PNG so the
// recognition engine always sees the same representation. Images already in
// an RGB-family model pass through untouched.
func normalizeColorMode(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Paletted, *image.CMYK:
		// Fall through to conversion.
	default:
		return data, nil
	}

	rgb := image.NewRGBA(img.Bounds())
	draw.Draw(rgb, rgb.Bounds(), img, img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgb); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}
