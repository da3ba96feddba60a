package roster

import (
	"math"
	"regexp"
	"strings"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// RowKind classifies a clustered row below the header band.
type RowKind int

const (
	// RowPlayer is the default: the row is treated as a roster entry.
	RowPlayer RowKind = iota

	// RowSkip marks non-data furniture (running score, officials,
	// quarter labels, header echoes).
	RowSkip

	// RowTotals marks the printed team-totals row.
	RowTotals
)

// skipPatterns is the denylist of non-data row labels. Matched against
// the upper-cased concatenated row text.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`RUNNING\s*SCORE`),
	regexp.MustCompile(`TIME\s*-?\s*OUTS?`),
	regexp.MustCompile(`TECHNICAL`),
	regexp.MustCompile(`\bCOACH\b`),
	regexp.MustCompile(`\bSCORER\b`),
	regexp.MustCompile(`\bTIMER\b`),
	regexp.MustCompile(`\bREFEREE\b`),
	regexp.MustCompile(`\bDATE\b`),
	regexp.MustCompile(`\bLOCATION\b`),
	regexp.MustCompile(`^Q[1-4]\b`),
	regexp.MustCompile(`\b[1-4](ST|ND|RD|TH)\s+QUARTER\b`),
	regexp.MustCompile(`TEAM\s*FOULS`),
	// Header echoes: a row repeating the column headers themselves.
	regexp.MustCompile(`^(POS|PLAYER|NO)\.?$`),
	regexp.MustCompile(`\bPOS\b.*\bPLAYER\b|\bPLAYER\b.*\bNO\b|\bNO\b.*\bPLAYER\b`),
}

var totalsPattern = regexp.MustCompile(`\bTOTALS?\b`)

// quarterToken matches quarter-indicator cells such as "1Q" that share
// the name zone on some prints.
var quarterToken = regexp.MustCompile(`^\dQ$`)

// Classify determines what a row below the header band represents.
// The denylist wins over totals detection so that technical-foul and
// team-fouls banners are never mistaken for the totals row.
func Classify(row layout.Row) RowKind {
	text := strings.ToUpper(row.Text())
	for _, p := range skipPatterns {
		if p.MatchString(text) {
			return RowSkip
		}
	}
	if totalsPattern.MatchString(text) {
		return RowTotals
	}
	return RowPlayer
}

// Zones is a player row partitioned by horizontal position. Tokens
// falling between the fouls block and the scoring block (the
// quarter-by-quarter markers) are intentionally absent.
type Zones struct {
	Name    []layout.Token
	Fouls   []layout.Token
	Scoring []layout.Token
}

// IsEmpty returns true when no zone holds any token, meaning the row is
// not a player row at all.
func (z Zones) IsEmpty() bool {
	return len(z.Name) == 0 && len(z.Fouls) == 0 && len(z.Scoring) == 0
}

// PartitionZones splits a row's tokens into name, fouls, and scoring
// zones using the anchor set. A token lands in the scoring zone at or
// right of the scoring block's left boundary, in the fouls zone inside
// the fouls anchor range, and in the name zone left of whichever of the
// two boundaries is smaller. Everything else is discarded.
func PartitionZones(row layout.Row, anchors *layout.AnchorSet) Zones {
	var z Zones

	scoringLeft, hasScoring := anchors.ScoringLeft()
	fouls := anchors.Fouls

	nameBoundary := math.Inf(1)
	if fouls != nil {
		nameBoundary = fouls.Left
	}
	if hasScoring && scoringLeft < nameBoundary {
		nameBoundary = scoringLeft
	}

	for _, tok := range row.Tokens {
		x := tok.CenterX
		switch {
		case hasScoring && x >= scoringLeft:
			z.Scoring = append(z.Scoring, tok)
		case fouls != nil && x >= fouls.Left && x <= fouls.Right:
			z.Fouls = append(z.Fouls, tok)
		case x < nameBoundary:
			z.Name = append(z.Name, tok)
		}
	}
	return z
}

// ExtractIdentity pulls the jersey number and player name out of the
// name zone.
//
// Jersey number: among numeric-only tokens of 1-3 digits, the one whose
// center is closest to the jersey-number anchor wins; without an anchor
// the first candidate wins.
//
// Name: the left-to-right concatenation of every remaining token that
// contains a letter and is neither a bare integer nor a quarter
// indicator.
func ExtractIdentity(zone []layout.Token, anchors *layout.AnchorSet) (number, name *string) {
	jersey := -1
	for i, tok := range zone {
		if !tok.IsNumeric() || len(tok.Text) > 3 {
			continue
		}
		if anchors.PlayerNumber == nil {
			jersey = i
			break
		}
		if jersey < 0 {
			jersey = i
			continue
		}
		center := anchors.PlayerNumber.Center()
		if math.Abs(tok.CenterX-center) < math.Abs(zone[jersey].CenterX-center) {
			jersey = i
		}
	}
	if jersey >= 0 {
		number = model.String(zone[jersey].Text)
	}

	var parts []string
	for i, tok := range zone {
		if i == jersey || tok.IsNumeric() || quarterToken.MatchString(strings.ToUpper(tok.Text)) {
			continue
		}
		if !tok.HasLetter() {
			continue
		}
		parts = append(parts, tok.Text)
	}
	if len(parts) > 0 {
		name = model.String(strings.Join(parts, " "))
	}
	return number, name
}
