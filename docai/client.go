// Package docai provides a hosted document-understanding provider for
// scoresheet scans, backed by the Azure Computer Vision OCR API. It
// maps the provider response onto the normalized OCR record consumed
// by the scoresheet parser; geometry and confidence are taken from the
// provider as-is, never re-derived.
package docai

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/Azure/go-autorest/autorest"
	"github.com/pkg/errors"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/ocr"
)

// Client calls the Azure Computer Vision OCR endpoint.
type Client struct {
	client *computervision.BaseClient
}

// NewClient creates a client for the given Cognitive Services endpoint
// and API key.
func NewClient(endpoint, apiKey string) *Client {
	client := computervision.New(endpoint)
	client.Authorizer = autorest.NewCognitiveServicesAuthorizer(apiKey)
	return &Client{client: &client}
}

// Recognize runs printed-text OCR over one scanned page and returns
// the normalized record. Azure reports line geometry but no per-line
// confidence, so Confidence stays nil. Page pixel dimensions are
// probed from the image itself; the API response does not carry them.
func (c *Client) Recognize(ctx context.Context, imageData []byte) (*model.OCRDocument, error) {
	width, height, err := ocr.ProbeDimensions(imageData)
	if err != nil {
		return nil, errors.Wrap(err, "probing image dimensions")
	}

	result, err := c.client.RecognizePrintedTextInStream(
		ctx,
		true,
		io.NopCloser(bytes.NewReader(imageData)),
		computervision.OcrLanguages(computervision.En),
	)
	if err != nil {
		return nil, errors.Wrap(err, "recognizing printed text")
	}

	return fromOCRResult(result, width, height), nil
}

// fromOCRResult flattens the Azure region/line/word hierarchy into the
// normalized page record.
func fromOCRResult(result computervision.OcrResult, width, height float64) *model.OCRDocument {
	page := model.OCRPage{
		PageNumber: 1,
		Width:      width,
		Height:     height,
	}
	var texts []string

	if result.Regions != nil {
		for _, region := range *result.Regions {
			if region.Lines == nil {
				continue
			}
			for _, line := range *region.Lines {
				var words []string
				if line.Words != nil {
					for _, word := range *line.Words {
						if word.Text != nil {
							words = append(words, *word.Text)
						}
					}
				}
				text := strings.Join(words, " ")
				if text == "" {
					continue
				}

				ocrLine := model.OCRLine{Text: text}
				if quad, ok := parseBoundingBox(line.BoundingBox); ok {
					ocrLine.BBox = &quad
				}
				page.Lines = append(page.Lines, ocrLine)
				texts = append(texts, text)
			}
		}
	}

	return &model.OCRDocument{
		Text:  strings.Join(texts, "\n"),
		Pages: []model.OCRPage{page},
	}
}

// parseBoundingBox parses Azure's "x,y,width,height" bounding-box
// string into a quad.
func parseBoundingBox(box *string) (model.Quad, bool) {
	if box == nil {
		return model.Quad{}, false
	}
	parts := strings.Split(*box, ",")
	if len(parts) != 4 {
		return model.Quad{}, false
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model.Quad{}, false
		}
		vals[i] = v
	}
	return model.NewQuadFromRect(vals[0], vals[1], vals[2], vals[3]), true
}
