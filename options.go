package scoresheet

import "github.com/ejberdin-coachiq/coachiq-backend-sub000/roster"

// parseOptions holds configuration for a parse. All thresholds are
// empirically tuned; the fluent setters on Parser exist so callers can
// recalibrate for unusual scans without forking the engine.
type parseOptions struct {
	// rowTolerance is the row-clustering band as a fraction of page
	// height.
	rowTolerance float64

	// columnTolerance is the anchor-matching window as a fraction of
	// page width.
	columnTolerance float64

	// foulConfidenceDrop is the confidence-drop threshold for inferred
	// foul marks.
	foulConfidenceDrop float64

	// headerBuffer extends the header band downward, as a fraction of
	// page height.
	headerBuffer float64

	// blankTextThreshold is the minimum count of non-template letters
	// before a page without a player table is considered non-blank.
	blankTextThreshold int
}

// defaultParseOptions returns the default parse configuration.
func defaultParseOptions() parseOptions {
	return parseOptions{
		rowTolerance:       0.015,
		columnTolerance:    roster.DefaultColumnTolerance,
		foulConfidenceDrop: roster.DefaultFoulConfig().ConfidenceDrop,
		headerBuffer:       0.01,
		blankTextThreshold: DefaultBlankTextThreshold,
	}
}
