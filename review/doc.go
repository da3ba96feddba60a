// Package review scores and sanity-checks an extracted roster.
//
// [Validate] runs cross-field consistency checks (points equation, foul
// ceiling, team-sum agreement, null-rate) over the final player list
// and team totals. Checks never mutate or correct values: a mismatch is
// recorded as a failed check plus a human-readable review reason.
//
// [PlayerConfidence] and [OverallConfidence] combine per-row OCR
// confidence with structural penalties into quality scores in [0,1].
package review
