package model

// OCRDocument is the normalized record produced by an OCR provider.
// The engine consults only the first page; Text carries the provider's
// full-page plain text and is used for blank-page detection.
type OCRDocument struct {
	Text  string    `json:"text"`
	Pages []OCRPage `json:"pages"`
}

// OCRPage holds the recognized lines of a single page along with its
// pixel dimensions. Line geometry is expressed in the same pixel space
// as Width and Height.
type OCRPage struct {
	PageNumber int       `json:"pageNumber"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Lines      []OCRLine `json:"lines"`
}

// OCRLine is one recognized text fragment. Confidence and BBox are nil
// when the provider did not report them; a line without a bounding box
// cannot be positioned and is ignored by spatial analysis.
type OCRLine struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence"`
	BBox       *Quad    `json:"bbox"`
}

// FirstPage returns the first page of the document, or nil if the
// document has no pages.
func (d *OCRDocument) FirstPage() *OCRPage {
	if d == nil || len(d.Pages) == 0 {
		return nil
	}
	return &d.Pages[0]
}
