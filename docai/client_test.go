package docai

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/services/cognitiveservices/v3.0/computervision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestFromOCRResult(t *testing.T) {
	result := computervision.OcrResult{
		Regions: &[]computervision.OcrRegion{
			{
				Lines: &[]computervision.OcrLine{
					{
						BoundingBox: str("40,95,160,20"),
						Words: &[]computervision.OcrWord{
							{Text: str("PLAYER")},
							{Text: str("NAME")},
						},
					},
					{
						BoundingBox: str("40,195,120,20"),
						Words: &[]computervision.OcrWord{
							{Text: str("Jordan")},
						},
					},
				},
			},
		},
	}

	doc := fromOCRResult(result, 1000, 1000)

	require.Len(t, doc.Pages, 1)
	page := doc.Pages[0]
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, float64(1000), page.Width)
	assert.Equal(t, float64(1000), page.Height)

	require.Len(t, page.Lines, 2)
	assert.Equal(t, "PLAYER NAME", page.Lines[0].Text)
	require.NotNil(t, page.Lines[0].BBox)
	assert.Equal(t, float64(40), page.Lines[0].BBox.Left())
	assert.Equal(t, float64(200), page.Lines[0].BBox.Right())
	assert.Nil(t, page.Lines[0].Confidence, "Azure reports no line confidence")

	assert.Equal(t, "PLAYER NAME\nJordan", doc.Text)
}

func TestFromOCRResult_EmptyRegions(t *testing.T) {
	doc := fromOCRResult(computervision.OcrResult{}, 800, 600)

	require.Len(t, doc.Pages, 1)
	assert.Empty(t, doc.Pages[0].Lines)
	assert.Equal(t, "", doc.Text)
}

func TestFromOCRResult_WordlessLineDropped(t *testing.T) {
	result := computervision.OcrResult{
		Regions: &[]computervision.OcrRegion{
			{
				Lines: &[]computervision.OcrLine{
					{BoundingBox: str("0,0,10,10")},
				},
			},
		},
	}

	doc := fromOCRResult(result, 100, 100)
	assert.Empty(t, doc.Pages[0].Lines)
}

func TestParseBoundingBox(t *testing.T) {
	quad, ok := parseBoundingBox(str("10,20,30,40"))
	require.True(t, ok)
	assert.Equal(t, float64(10), quad.Left())
	assert.Equal(t, float64(40), quad.Right())
	assert.Equal(t, float64(20), quad.Top())
	assert.Equal(t, float64(60), quad.Bottom())

	_, ok = parseBoundingBox(nil)
	assert.False(t, ok)

	_, ok = parseBoundingBox(str("10,20,30"))
	assert.False(t, ok)

	_, ok = parseBoundingBox(str("a,b,c,d"))
	assert.False(t, ok)
}
