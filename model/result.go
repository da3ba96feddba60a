package model

// TemplateStandard identifies the fixed scorebook column layout this
// engine extracts. There is no template auto-detection; the caller is
// expected to know which form was scanned.
const TemplateStandard = "scoresheet-standard"

// Shooting holds per-player (or team) shot counts. On the standard
// template the scoring summary prints makes and free-throw attempts
// only, so FG2Att and FG3Att are always nil; the fields exist so the
// output schema is stable across templates.
type Shooting struct {
	FG2Made *int `json:"fg2_made"`
	FG2Att  *int `json:"fg2_att"`
	FG3Made *int `json:"fg3_made"`
	FG3Att  *int `json:"fg3_att"`
	FTMade  *int `json:"ft_made"`
	FTAtt   *int `json:"ft_att"`
}

// Player is one extracted roster entry. RowIndex is assigned
// sequentially (0-based, top to bottom) only to rows that yield a
// player. Flags carries machine-readable notes about heuristics or
// ambiguity encountered while extracting this row.
type Player struct {
	RowIndex      int      `json:"row_index"`
	Name          *string  `json:"player_name"`
	Number        *string  `json:"player_number"`
	PersonalFouls *int     `json:"personal_fouls_total"`
	Shooting      Shooting `json:"shooting"`
	TotalPoints   *int     `json:"total_points"`
	Confidence    float64  `json:"confidence"`
	Flags         []string `json:"flags"`
}

// TeamTotals is populated from the printed totals row, not summed from
// players; the validator cross-checks the two.
type TeamTotals struct {
	Shooting    Shooting `json:"shooting"`
	TotalPoints *int     `json:"total_points"`
}

// Check is one named validation outcome.
type Check struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
}

// Validation is the result of cross-field consistency checking.
// NeedsReview is true exactly when ReviewReasons is non-empty.
type Validation struct {
	Checks        []Check  `json:"checks"`
	NeedsReview   bool     `json:"needs_review"`
	ReviewReasons []string `json:"review_reasons"`
}

// Quality summarizes extraction confidence for the whole page.
type Quality struct {
	OverallConfidence float64  `json:"overall_confidence"`
	Issues            []string `json:"issues"`
}

// Result is the top-level extraction output. Every field is always
// populated; absent data is represented by nil values inside the
// structures, never by missing keys.
type Result struct {
	Template   string     `json:"template"`
	IsBlank    bool       `json:"is_blank"`
	Quality    Quality    `json:"quality"`
	Players    []Player   `json:"players"`
	TeamTotals TeamTotals `json:"team_totals"`
	Validation Validation `json:"validation"`
}

// Int returns a pointer to v. Convenience for building nullable fields.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
