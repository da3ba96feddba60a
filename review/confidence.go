package review

import (
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// defaultTokenConfidence stands in when a provider reports no per-line
// confidence at all.
const defaultTokenConfidence = 0.5

// Structural penalty multipliers. They compound: a flagged row with a
// null name and null points scores 0.7*0.8*0.9 of its OCR confidence.
const (
	penaltyNullPoints = 0.7
	penaltyNullName   = 0.8
	penaltyFlagged    = 0.9
)

// issuePenalty is subtracted from the overall score per quality issue.
const issuePenalty = 0.05

// PlayerConfidence scores one extracted row: the mean of the row
// tokens' OCR confidences, discounted for missing total points, a
// missing name, and any recorded flags.
func PlayerConfidence(tokens []layout.Token, nullPoints, nullName, flagged bool) float64 {
	sum := 0.0
	count := 0
	for _, tok := range tokens {
		if tok.Confidence != nil {
			sum += *tok.Confidence
			count++
		}
	}
	confidence := defaultTokenConfidence
	if count > 0 {
		confidence = sum / float64(count)
	}

	if nullPoints {
		confidence *= penaltyNullPoints
	}
	if nullName {
		confidence *= penaltyNullName
	}
	if flagged {
		confidence *= penaltyFlagged
	}
	return confidence
}

// OverallConfidence averages the per-player confidences, subtracts a
// fixed penalty per quality issue, and clamps to [0,1]. An empty player
// list yields zero: a page that produced no roster has no extraction to
// be confident about.
func OverallConfidence(players []model.Player, issueCount int) float64 {
	if len(players) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range players {
		sum += p.Confidence
	}
	overall := sum/float64(len(players)) - issuePenalty*float64(issueCount)

	if overall < 0 {
		return 0
	}
	if overall > 1 {
		return 1
	}
	return overall
}
