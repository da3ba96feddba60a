//go:build ocr

// Package ocr provides a local OCR provider for scoresheet scans.
//
// This package wraps the Tesseract OCR engine via gosseract and emits
// the normalized OCR record the scoresheet parser consumes. It
// requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeDocument performs OCR on image data (PNG, TIFF, JPEG, etc.)
// and returns the normalized document record with per-line geometry.
// Tesseract is asked for hOCR output so bounding boxes survive; word
// confidences are averaged per line.
func (c *Client) RecognizeDocument(imageData []byte) (*model.OCRDocument, error) {
	width, height, err := ProbeDimensions(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to read image dimensions: %w", err)
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	hocr, err := c.client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	doc, err := ParseHOCR(hocr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR output: %w", err)
	}
	if page := doc.FirstPage(); page != nil && page.Width == 0 {
		page.Width = width
		page.Height = height
	}
	return doc, nil
}
