package ocr

import (
	"bytes"
	"fmt"
	"image"

	// Scoresheet scans arrive in whatever format the scanner app
	// produced; register the common decoders so dimensions can be
	// probed from any of them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ProbeDimensions returns the pixel dimensions of an encoded image
// without decoding the full pixel data. Supported formats: PNG, JPEG,
// GIF, BMP, TIFF, WebP.
func ProbeDimensions(imageData []byte) (width, height float64, err error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	return float64(config.Width), float64(config.Height), nil
}
