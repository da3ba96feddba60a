package layout

import (
	"sort"
	"strings"
)

// Row is an ordered (left-to-right) sequence of tokens sharing an
// inferred vertical center. Rows are transient: computed fresh per
// parse and consumed immediately by classification.
type Row struct {
	// Tokens are the member tokens, sorted left to right.
	Tokens []Token

	// CenterY is the mean normalized vertical center of the members.
	CenterY float64
}

// Text returns the row's concatenated text, left to right.
func (r Row) Text() string {
	parts := make([]string, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// RowConfig holds configuration for row clustering
type RowConfig struct {
	// CenterTolerance is the maximum distance between a token's
	// vertical center and the running row mean for the token to join
	// the row, as a fraction of page height (default: 0.015).
	CenterTolerance float64
}

// DefaultRowConfig returns sensible default configuration
func DefaultRowConfig() RowConfig {
	return RowConfig{
		CenterTolerance: 0.015,
	}
}

// RowClusterer groups tokens into horizontal rows by vertical position,
// independent of horizontal position.
type RowClusterer struct {
	config RowConfig
}

// NewRowClusterer creates a clusterer with default configuration
func NewRowClusterer() *RowClusterer {
	return &RowClusterer{config: DefaultRowConfig()}
}

// NewRowClustererWithConfig creates a clusterer with custom configuration
func NewRowClustererWithConfig(config RowConfig) *RowClusterer {
	if config.CenterTolerance <= 0 {
		config.CenterTolerance = DefaultRowConfig().CenterTolerance
	}
	return &RowClusterer{config: config}
}

// Cluster groups tokens into rows. Tokens are sorted by vertical center
// and walked once; a token joins the current row while its center is
// within the tolerance of the row's running mean, otherwise it closes
// the row and starts a new one. The running mean (rather than a fixed
// bucket) lets rows with slight vertical skew still merge. Closed rows
// are final. Sorting is stable with fully specified tie-breaks so the
// clustering is deterministic for identical input.
func (c *RowClusterer) Cluster(tokens []Token) []Row {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CenterY != sorted[j].CenterY {
			return sorted[i].CenterY < sorted[j].CenterY
		}
		return sorted[i].Left < sorted[j].Left
	})

	var rows []Row
	var current []Token
	var sumY float64

	flush := func() {
		if len(current) == 0 {
			return
		}
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].Left < current[j].Left
		})
		rows = append(rows, Row{
			Tokens:  current,
			CenterY: sumY / float64(len(current)),
		})
	}

	for _, tok := range sorted {
		if len(current) == 0 {
			current = []Token{tok}
			sumY = tok.CenterY
			continue
		}
		mean := sumY / float64(len(current))
		if absFloat64(tok.CenterY-mean) <= c.config.CenterTolerance {
			current = append(current, tok)
			sumY += tok.CenterY
		} else {
			flush()
			current = []Token{tok}
			sumY = tok.CenterY
		}
	}
	flush()

	return rows
}

// absFloat64 returns the absolute value of a float64
func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
