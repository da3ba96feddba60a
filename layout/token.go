package layout

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// Token is one positioned OCR fragment. Vertical and horizontal centers
// are normalized to [0,1] by page dimensions; Left and Right keep the
// raw pixel extents. Tokens are never mutated after creation.
type Token struct {
	// Text is the fragment text, NFKC-normalized and trimmed so
	// fullwidth OCR output compares equal to the ASCII label table.
	Text string

	// Confidence is the provider-reported confidence, or nil.
	Confidence *float64

	// CenterX is the horizontal center normalized by page width.
	CenterX float64

	// CenterY is the vertical center normalized by page height.
	CenterY float64

	// Left and Right are the horizontal extents in pixels.
	Left, Right float64

	// BBox is the source bounding quadrilateral.
	BBox model.Quad
}

// NewToken derives a token from an OCR line. It returns false when the
// line has no bounding box or the page dimensions are not positive,
// since such a line cannot be positioned.
func NewToken(line model.OCRLine, pageWidth, pageHeight float64) (Token, bool) {
	if line.BBox == nil || pageWidth <= 0 || pageHeight <= 0 {
		return Token{}, false
	}
	q := *line.BBox
	return Token{
		Text:       norm.NFKC.String(strings.TrimSpace(line.Text)),
		Confidence: line.Confidence,
		CenterX:    q.Center().X / pageWidth,
		CenterY:    q.Center().Y / pageHeight,
		Left:       q.Left(),
		Right:      q.Right(),
		BBox:       q,
	}, true
}

// TokensFromPage derives tokens for every line on the page that carries
// a bounding box, in the page's line order.
func TokensFromPage(page *model.OCRPage) []Token {
	if page == nil {
		return nil
	}
	tokens := make([]Token, 0, len(page.Lines))
	for _, line := range page.Lines {
		if tok, ok := NewToken(line, page.Width, page.Height); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// IsNumeric returns true if the token text is one or more digits and
// nothing else.
func (t Token) IsNumeric() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Int parses the token as an integer. The second return is false for
// non-numeric tokens.
func (t Token) Int() (int, bool) {
	if !t.IsNumeric() {
		return 0, false
	}
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// HasLetter returns true if the token contains at least one letter.
func (t Token) HasLetter() bool {
	for _, r := range t.Text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
