package roster

import (
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// ExtractTotals reads team-level aggregates from the detected totals
// row, reusing the numeric column mapper with the same anchor set. The
// printed totals are authoritative input; the validator cross-checks
// them against the player sum separately.
//
// When no numeric token maps to the total-points anchor, the rightmost
// numeric token on the row is taken as total points. Totals carry no
// per-row flag list, so this lowest-confidence fallback is unflagged.
func ExtractTotals(row layout.Row, anchors *layout.AnchorSet, tolerance float64) model.TeamTotals {
	zone := row.Tokens
	if z := PartitionZones(row, anchors); len(z.Scoring) > 0 {
		zone = z.Scoring
	}

	vals, _ := MapScoring(zone, anchors, tolerance)
	totals := model.TeamTotals{
		Shooting: model.Shooting{
			FG2Made: vals.FG2Made,
			FG3Made: vals.FG3Made,
			FTAtt:   vals.FTAtt,
			FTMade:  vals.FTMade,
		},
		TotalPoints: vals.TotalPoints,
	}

	if totals.TotalPoints == nil {
		totals.TotalPoints = rightmostNumeric(row.Tokens)
	}
	return totals
}

// rightmostNumeric returns the value of the numeric token with the
// greatest horizontal center, or nil if the row has none.
func rightmostNumeric(tokens []layout.Token) *int {
	best := -1
	for i, tok := range tokens {
		if !tok.IsNumeric() {
			continue
		}
		if best < 0 || tok.CenterX >= tokens[best].CenterX {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	if n, ok := tokens[best].Int(); ok {
		return model.Int(n)
	}
	return nil
}
