package scoresheet

import (
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/review"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/roster"
)

// Parser extracts a roster from one OCR record. A Parser is cheap to
// build, safe for concurrent use (it is read-only after configuration),
// and holds no state between calls.
type Parser struct {
	options parseOptions
}

// NewParser creates a parser with default thresholds.
func NewParser() *Parser {
	return &Parser{options: defaultParseOptions()}
}

// Parse extracts a roster using default thresholds. Shorthand for
// NewParser().Parse(doc).
func Parse(doc *model.OCRDocument) *model.Result {
	return NewParser().Parse(doc)
}

// RowTolerance sets the row-clustering band as a fraction of page
// height (default 0.015).
func (p *Parser) RowTolerance(v float64) *Parser {
	if v > 0 {
		p.options.rowTolerance = v
	}
	return p
}

// ColumnTolerance sets the anchor-matching window for numeric columns
// as a fraction of page width (default 0.05).
func (p *Parser) ColumnTolerance(v float64) *Parser {
	if v > 0 {
		p.options.columnTolerance = v
	}
	return p
}

// FoulConfidenceDrop sets the confidence-drop threshold for inferring
// foul marks from OCR confidence (default 0.15).
func (p *Parser) FoulConfidenceDrop(v float64) *Parser {
	if v > 0 {
		p.options.foulConfidenceDrop = v
	}
	return p
}

// HeaderBuffer sets how far below the printed headers the exclusion
// band extends, as a fraction of page height (default 0.01).
func (p *Parser) HeaderBuffer(v float64) *Parser {
	if v > 0 {
		p.options.headerBuffer = v
	}
	return p
}

// BlankTextThreshold sets the minimum number of non-template letters a
// page without a player table must carry to be reported as
// unrecognized rather than blank (default 15).
func (p *Parser) BlankTextThreshold(n int) *Parser {
	if n > 0 {
		p.options.blankTextThreshold = n
	}
	return p
}

// Parse runs the full pipeline over the first page of the OCR record:
// anchor detection, row clustering, row classification, numeric column
// mapping, foul counting, totals extraction, validation, and confidence
// aggregation. It never fails; malformed input yields the blank-shaped
// result with an issue string.
func (p *Parser) Parse(doc *model.OCRDocument) *model.Result {
	if doc == nil || doc.FirstPage() == nil {
		result := issueResult("missing or malformed OCR record")
		result.IsBlank = true
		return result
	}
	page := doc.FirstPage()

	anchors := layout.NewAnchorDetector().Detect(page)
	if !anchors.HasPlayerTable {
		return p.emptyPageResult(doc)
	}

	tokens := layout.TokensFromPage(page)
	rows := layout.NewRowClustererWithConfig(layout.RowConfig{
		CenterTolerance: p.options.rowTolerance,
	}).Cluster(tokens)

	extractor := roster.NewExtractor(anchors, roster.Config{
		ColumnTolerance: p.options.columnTolerance,
		HeaderBuffer:    p.options.headerBuffer,
		Fouls:           roster.FoulConfig{ConfidenceDrop: p.options.foulConfidenceDrop},
	})
	players, totals, totalsFound := extractor.Extract(rows)

	if len(players) == 0 && !totalsFound {
		return p.emptyPageResult(doc)
	}

	issues := []string{}
	validation := review.Validate(players, totals)

	return &model.Result{
		Template: model.TemplateStandard,
		IsBlank:  false,
		Quality: model.Quality{
			OverallConfidence: review.OverallConfidence(players, len(issues)),
			Issues:            issues,
		},
		Players:    players,
		TeamTotals: totals,
		Validation: validation,
	}
}

// emptyPageResult decides between "blank page" and "unrecognized
// content" for a page that produced no roster. The raw page text is
// stripped of template vocabulary and numerals; too few letters left
// means the sheet was never filled in, anything more gets surfaced as
// an issue instead of silently returning an empty roster.
func (p *Parser) emptyPageResult(doc *model.OCRDocument) *model.Result {
	if StrippedContentLength(doc.Text) < p.options.blankTextThreshold {
		result := emptyResult()
		result.IsBlank = true
		result.Quality.OverallConfidence = 1.0
		return result
	}
	return issueResult("page has content but no recognizable player table")
}

// issueResult returns the empty-roster result shape carrying one
// quality issue and zero confidence.
func issueResult(issue string) *model.Result {
	result := emptyResult()
	result.Quality.Issues = []string{issue}
	return result
}

// emptyResult returns a fully-populated result with no extracted data.
func emptyResult() *model.Result {
	return &model.Result{
		Template: model.TemplateStandard,
		IsBlank:  false,
		Quality: model.Quality{
			OverallConfidence: 0,
			Issues:            []string{},
		},
		Players:    []model.Player{},
		TeamTotals: model.TeamTotals{},
		Validation: model.Validation{
			Checks:        []model.Check{},
			NeedsReview:   false,
			ReviewReasons: []string{},
		},
	}
}
