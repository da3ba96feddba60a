package roster

import (
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/review"
)

// Config holds configuration for roster extraction
type Config struct {
	// ColumnTolerance is the anchor-matching window for numeric
	// columns, as a fraction of page width (default: 0.05).
	ColumnTolerance float64

	// HeaderBuffer extends the header band downward so header echoes
	// just below the printed labels are excluded, as a fraction of
	// page height (default: 0.01).
	HeaderBuffer float64

	// Fouls configures the foul-mark counter.
	Fouls FoulConfig
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		ColumnTolerance: DefaultColumnTolerance,
		HeaderBuffer:    0.01,
		Fouls:           DefaultFoulConfig(),
	}
}

// Extractor walks clustered rows and produces player records and team
// totals. The anchor set is read-only; a fresh Extractor is built per
// parse and holds no cross-call state.
type Extractor struct {
	anchors *layout.AnchorSet
	config  Config
	fouls   *FoulCounter
}

// NewExtractor creates an extractor for one page's anchor set
func NewExtractor(anchors *layout.AnchorSet, config Config) *Extractor {
	if config.ColumnTolerance <= 0 {
		config.ColumnTolerance = DefaultColumnTolerance
	}
	if config.HeaderBuffer <= 0 {
		config.HeaderBuffer = DefaultConfig().HeaderBuffer
	}
	return &Extractor{
		anchors: anchors,
		config:  config,
		fouls:   NewFoulCounterWithConfig(config.Fouls),
	}
}

// Extract classifies every row below the header band and extracts
// player records in top-to-bottom order. Row indexes are assigned only
// to rows that yield a player, so they are always 0..N-1. The third
// return reports whether a totals row was found.
func (e *Extractor) Extract(rows []layout.Row) ([]model.Player, model.TeamTotals, bool) {
	players := make([]model.Player, 0, len(rows))
	var totals model.TeamTotals
	totalsFound := false

	for _, row := range rows {
		if row.CenterY <= e.anchors.HeaderBottom+e.config.HeaderBuffer {
			continue
		}

		switch Classify(row) {
		case RowSkip:
			continue
		case RowTotals:
			if !totalsFound {
				totals = ExtractTotals(row, e.anchors, e.config.ColumnTolerance)
				totalsFound = true
			}
			continue
		}

		if player, ok := e.extractPlayer(row); ok {
			player.RowIndex = len(players)
			players = append(players, player)
		}
	}

	return players, totals, totalsFound
}

// extractPlayer builds one player record from a row. A row with no
// tokens in any zone is not a player row and is dropped entirely.
func (e *Extractor) extractPlayer(row layout.Row) (model.Player, bool) {
	zones := PartitionZones(row, e.anchors)
	if zones.IsEmpty() {
		return model.Player{}, false
	}

	number, name := ExtractIdentity(zones.Name, e.anchors)
	vals, flags := MapScoring(zones.Scoring, e.anchors, e.config.ColumnTolerance)
	foulCount, foulFlags := e.fouls.Count(zones.Fouls)
	flags = append(flags, foulFlags...)
	if flags == nil {
		flags = []string{}
	}

	player := model.Player{
		Name:          name,
		Number:        number,
		PersonalFouls: foulCount,
		Shooting: model.Shooting{
			FG2Made: vals.FG2Made,
			FG3Made: vals.FG3Made,
			FTAtt:   vals.FTAtt,
			FTMade:  vals.FTMade,
		},
		TotalPoints: vals.TotalPoints,
		Flags:       flags,
	}
	player.Confidence = review.PlayerConfidence(
		row.Tokens,
		player.TotalPoints == nil,
		player.Name == nil,
		len(player.Flags) > 0,
	)
	return player, true
}
