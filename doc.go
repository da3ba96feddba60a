// Package scoresheet reconstructs a typed basketball roster from noisy
// OCR output for a fixed-layout paper statistics sheet.
//
// Basic usage:
//
//	result := scoresheet.Parse(doc)
//	if result.IsBlank {
//	    // nothing to extract
//	}
//	for _, p := range result.Players {
//	    // ...
//	}
//
// With tuned thresholds:
//
//	result := scoresheet.NewParser().
//	    RowTolerance(0.02).
//	    FoulConfidenceDrop(0.2).
//	    Parse(doc)
//
// The parser is a pure, synchronous computation over one in-memory OCR
// record: it performs no I/O, holds no cross-call state, and never
// fails — missing anchors, ambiguous rows, and undeterminable fields
// degrade to null values plus explanatory flags, issues, and review
// reasons. Identical input yields bit-identical output.
//
// Producing the OCR record is the job of a provider; see the ocr
// (Tesseract) and docai (Azure) packages.
package scoresheet
