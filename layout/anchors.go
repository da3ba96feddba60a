package layout

import (
	"regexp"
	"strings"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// Anchor is a normalized horizontal range (0-1) associated with one
// semantic table column, derived from a detected header label.
type Anchor struct {
	Left, Right float64
}

// Center returns the horizontal center of the anchor range
func (a Anchor) Center() float64 {
	return (a.Left + a.Right) / 2
}

// AnchorSet holds the detected column anchors for one page. It is
// computed once per parse and treated as read-only by every downstream
// stage. Nil fields mean the corresponding header was not found.
type AnchorSet struct {
	PlayerName     *Anchor
	PlayerNumber   *Anchor
	Position       *Anchor
	QuartersPlayed *Anchor
	Fouls          *Anchor
	Scoring        *Anchor
	FG2Made        *Anchor
	FG3Made        *Anchor
	FTAtt          *Anchor
	FTMade         *Anchor
	TotalPoints    *Anchor
	Turnovers      *Anchor

	// HasPlayerTable is true once either the player-name or the
	// jersey-number header was found. When false the page holds no
	// recognizable player table and row extraction must not run.
	HasPlayerTable bool

	// HeaderBottom is the normalized vertical center of the lowest
	// matched header label. Data rows live below it.
	HeaderBottom float64
}

// ScoringLeft returns the normalized left boundary of the scoring
// summary block. The second return is false when no scoring header or
// sub-column anchor was found at all.
func (s *AnchorSet) ScoringLeft() (float64, bool) {
	if s.Scoring != nil {
		return s.Scoring.Left, true
	}
	left := 0.0
	found := false
	for _, a := range []*Anchor{s.FG2Made, s.FG3Made, s.FTAtt, s.FTMade, s.TotalPoints} {
		if a == nil {
			continue
		}
		if !found || a.Left < left {
			left = a.Left
			found = true
		}
	}
	return left, found
}

// headerLabel pairs a named regexp pattern with the anchor slot it
// fills. Patterns are tested against upper-cased, trimmed line text.
// Aliases seen on real scorebooks are folded into the pattern rather
// than handled by separate control flow, so new templates only add
// table entries.
type headerLabel struct {
	name    string
	pattern *regexp.Regexp
	slot    func(*AnchorSet) **Anchor
	// table is true for labels whose presence proves a player table
	// exists on the page.
	table bool
}

var headerLabels = []headerLabel{
	{
		name:    "player_name",
		pattern: regexp.MustCompile(`^PLAYERS?(\s+NAME)?$|PLAYER\s*NAME|^NAME$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.PlayerName },
		table:   true,
	},
	{
		name:    "player_number",
		pattern: regexp.MustCompile(`^(NO\.?|NUM\.?|NUMBER|#)$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.PlayerNumber },
		table:   true,
	},
	{
		name:    "position",
		pattern: regexp.MustCompile(`^POS\.?$|^POSITION$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.Position },
	},
	{
		name:    "quarters_played",
		pattern: regexp.MustCompile(`QUARTERS?\s*PLAYED|^QTRS?\.?$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.QuartersPlayed },
	},
	{
		name:    "personal_fouls",
		pattern: regexp.MustCompile(`PERSONAL\s*FOULS?`),
		slot:    func(s *AnchorSet) **Anchor { return &s.Fouls },
	},
	{
		// Narrow fallback: some prints abbreviate the fouls block
		// header to the single word.
		name:    "fouls",
		pattern: regexp.MustCompile(`^FOULS?$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.Fouls },
	},
	{
		name:    "scoring_summary",
		pattern: regexp.MustCompile(`SCORING\s*SUMMARY|^SCORING$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.Scoring },
	},
	{
		name:    "fg2_made",
		pattern: regexp.MustCompile(`^2\s*-?\s*PTS?\.?$|2\s*-?\s*POINTS?|^2P$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.FG2Made },
	},
	{
		name:    "fg3_made",
		pattern: regexp.MustCompile(`^3\s*-?\s*PTS?\.?$|3\s*-?\s*POINTS?|^3P$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.FG3Made },
	},
	{
		name:    "ft_attempted",
		pattern: regexp.MustCompile(`^F\.?T\.?A\.?$|^FT\s*ATT(EMPTS?)?\.?$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.FTAtt },
	},
	{
		name:    "ft_made",
		pattern: regexp.MustCompile(`^F\.?T\.?M\.?$|^FT\s*MADE$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.FTMade },
	},
	{
		name:    "total_points",
		pattern: regexp.MustCompile(`^T\.?P\.?$|^PTS?\.?$|TOTAL\s*P(OIN)?TS?`),
		slot:    func(s *AnchorSet) **Anchor { return &s.TotalPoints },
	},
	{
		// Right-boundary marker for the scoring block. Not a data
		// column on this template.
		name:    "turnovers",
		pattern: regexp.MustCompile(`TURN\s*OVERS?|^T\.?O\.?$`),
		slot:    func(s *AnchorSet) **Anchor { return &s.Turnovers },
	},
}

// scoringOrder lists the scoring sub-columns left to right as printed
// on the standard template.
func scoringOrder(s *AnchorSet) []**Anchor {
	return []**Anchor{&s.FG2Made, &s.FG3Made, &s.FTAtt, &s.FTMade, &s.TotalPoints}
}

// AnchorDetector locates printed column headers on a page.
type AnchorDetector struct{}

// NewAnchorDetector creates a new anchor detector
func NewAnchorDetector() *AnchorDetector {
	return &AnchorDetector{}
}

// Detect scans all lines once and produces the page's anchor set.
// The first line matching a label wins that column; later matches are
// ignored. After the pass, missing scoring sub-columns are filled by
// proportional subdivision when the scoring-summary banner was found:
// each missing column takes an equal fifth of the span from the banner
// start to the turnovers marker (or the page's right edge).
func (d *AnchorDetector) Detect(page *model.OCRPage) *AnchorSet {
	set := &AnchorSet{}
	if page == nil {
		return set
	}

	for _, line := range page.Lines {
		tok, ok := NewToken(line, page.Width, page.Height)
		if !ok {
			continue
		}
		text := strings.ToUpper(tok.Text)
		for _, label := range headerLabels {
			slot := label.slot(set)
			if *slot != nil || !label.pattern.MatchString(text) {
				continue
			}
			*slot = &Anchor{
				Left:  tok.Left / page.Width,
				Right: tok.Right / page.Width,
			}
			if label.table {
				set.HasPlayerTable = true
			}
			if tok.CenterY > set.HeaderBottom {
				set.HeaderBottom = tok.CenterY
			}
		}
	}

	d.fillScoringColumns(set)
	return set
}

// fillScoringColumns assigns proportional slices to scoring sub-columns
// whose own headers were not detected.
func (d *AnchorDetector) fillScoringColumns(set *AnchorSet) {
	if set.Scoring == nil {
		return
	}

	start := set.Scoring.Left
	end := 1.0
	if set.Turnovers != nil && set.Turnovers.Left > start {
		end = set.Turnovers.Left
	}
	if end <= start {
		return
	}

	fifth := (end - start) / 5
	for i, slot := range scoringOrder(set) {
		if *slot != nil {
			continue
		}
		*slot = &Anchor{
			Left:  start + float64(i)*fifth,
			Right: start + float64(i+1)*fifth,
		}
	}
}
