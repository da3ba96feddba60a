// Package layout performs the spatial half of scoresheet extraction:
// turning positioned OCR lines into tokens, clustering tokens into
// table rows, and locating the printed column headers.
//
// # Tokens
//
// [TokensFromPage] converts OCR lines into [Token] values with
// normalized vertical/horizontal centers. Lines without bounding boxes
// are dropped; they cannot be positioned.
//
// # Rows
//
// The [RowClusterer] groups tokens into horizontal rows by greedy
// single-pass clustering on vertical center:
//
//	rows := layout.NewRowClusterer().Cluster(tokens)
//
// A token joins the current row while its center stays within a fixed
// tolerance of the row's running mean, so slightly skewed rows still
// merge. Rows are never re-clustered once closed.
//
// # Anchors
//
// The [AnchorDetector] scans all lines once, matching header text
// against a table of known column labels and aliases, and produces
// an immutable [AnchorSet]: one normalized horizontal range per
// semantic column. When the scoring-summary banner is found but its
// sub-column headers are not, the missing columns are assigned
// proportional fifths of the banner-to-turnovers span.
//
// If [AnchorSet.HasPlayerTable] is false the page has no recognizable
// player table and no row extraction should be attempted.
package layout
