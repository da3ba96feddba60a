package roster

import (
	"math"
	"sort"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
)

// DefaultColumnTolerance is the maximum distance between a numeric
// token's center and an anchor's center for the token to map to that
// column, as a fraction of page width.
const DefaultColumnTolerance = 0.05

// FlagPositionalFallback marks scoring values assigned purely by
// horizontal order because no usable column anchors existed. Values
// carrying this flag encode the standard template's column order and
// are lower-confidence input.
const FlagPositionalFallback = "scoring_positional_fallback"

// ScoringValues holds the mapped scoring-summary columns for one row.
// Nil means no numeric token landed in that column.
type ScoringValues struct {
	FG2Made     *int
	FG3Made     *int
	FTAtt       *int
	FTMade      *int
	TotalPoints *int
}

// MapScoring maps numeric tokens in the scoring zone to semantic
// columns by nearest-anchor-centroid matching. Columns are mapped in
// the fixed order total points, 2-point makes, 3-point makes,
// free-throw attempts, free-throw makes; a token is consumed by the
// first column that claims it. Exact distance ties go to the
// first-seen token.
//
// When neither the total-points nor the 2-point anchor exists, a purely
// positional fallback sorts the numeric tokens right to left and
// assigns total points, FT makes, FT attempts, 3-point makes, 2-point
// makes in that order, always flagged.
func MapScoring(zone []layout.Token, anchors *layout.AnchorSet, tolerance float64) (ScoringValues, []string) {
	if tolerance <= 0 {
		tolerance = DefaultColumnTolerance
	}

	var numeric []layout.Token
	for _, tok := range zone {
		if tok.IsNumeric() {
			numeric = append(numeric, tok)
		}
	}

	var vals ScoringValues
	if len(numeric) == 0 {
		return vals, nil
	}

	if anchors.TotalPoints == nil && anchors.FG2Made == nil {
		return mapPositional(numeric)
	}

	used := make([]bool, len(numeric))
	assign := func(anchor *layout.Anchor, dst **int) {
		if anchor == nil {
			return
		}
		idx := nearestUnused(numeric, used, anchor.Center(), tolerance)
		if idx < 0 {
			return
		}
		if n, ok := numeric[idx].Int(); ok {
			used[idx] = true
			v := n
			*dst = &v
		}
	}

	assign(anchors.TotalPoints, &vals.TotalPoints)
	assign(anchors.FG2Made, &vals.FG2Made)
	assign(anchors.FG3Made, &vals.FG3Made)
	assign(anchors.FTAtt, &vals.FTAtt)
	assign(anchors.FTMade, &vals.FTMade)
	return vals, nil
}

// nearestUnused returns the index of the unconsumed token closest to
// center within the tolerance window, or -1. Strict less-than keeps the
// first-seen token on exact ties.
func nearestUnused(tokens []layout.Token, used []bool, center, tolerance float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, tok := range tokens {
		if used[i] {
			continue
		}
		dist := math.Abs(tok.CenterX - center)
		if dist > tolerance {
			continue
		}
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// mapPositional assigns scoring columns by horizontal order alone,
// rightmost first. This encodes the standard template's column order
// and will mis-map any other template, so the result is always flagged
// rather than trusted.
func mapPositional(numeric []layout.Token) (ScoringValues, []string) {
	sorted := make([]layout.Token, len(numeric))
	copy(sorted, numeric)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CenterX > sorted[j].CenterX
	})

	var vals ScoringValues
	slots := []**int{&vals.TotalPoints, &vals.FTMade, &vals.FTAtt, &vals.FG3Made, &vals.FG2Made}
	for i, tok := range sorted {
		if i >= len(slots) {
			break
		}
		if n, ok := tok.Int(); ok {
			v := n
			*slots[i] = &v
		}
	}
	return vals, []string{FlagPositionalFallback}
}
