// Package model defines the data types shared across the scoresheet
// extraction pipeline.
//
// The package has two halves:
//
//   - Input types ([OCRDocument], [OCRPage], [OCRLine], [Quad]) mirror the
//     normalized record produced by an OCR provider. The engine consumes
//     these as-is and never re-derives geometry or confidence.
//
//   - Output types ([Result], [Player], [Shooting], [TeamTotals],
//     [Validation]) describe the extracted roster. Every field is always
//     present in the JSON form; unknown values are null, never omitted.
//
// All types are plain data with no behavior beyond geometry accessors.
// Nothing in this package mutates a value after construction.
package model
