// Package roster turns clustered scoresheet rows into typed player
// records and team totals.
//
// The [Extractor] walks every row below the header band and:
//
//   - classifies it (skip label, totals row, or player row),
//   - partitions player-row tokens into name, fouls, and scoring zones
//     by horizontal position relative to the column anchors,
//   - maps numeric scoring tokens to columns by nearest anchor centroid,
//   - recovers the personal-foul count from the fouls-zone marks via an
//     ordered list of heuristics ([FoulCounter]),
//   - extracts team totals from the detected totals row.
//
// Nothing here fails: every undeterminable field degrades to nil plus a
// machine-readable flag on the player record.
package roster
