package layout

import (
	"testing"
)

// makeToken creates a test token at a normalized position
func makeToken(text string, centerX, centerY float64) Token {
	return Token{
		Text:    text,
		CenterX: centerX,
		CenterY: centerY,
		Left:    centerX * 1000,
		Right:   centerX*1000 + 10,
	}
}

func TestRowClusterer_Empty(t *testing.T) {
	rows := NewRowClusterer().Cluster(nil)
	if rows != nil {
		t.Errorf("Expected nil rows, got %d", len(rows))
	}
}

func TestRowClusterer_SingleRow(t *testing.T) {
	tokens := []Token{
		makeToken("b", 0.5, 0.201),
		makeToken("a", 0.1, 0.2),
		makeToken("c", 0.9, 0.199),
	}

	rows := NewRowClusterer().Cluster(tokens)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	// Tokens sorted left to right within the row.
	got := rows[0].Text()
	if got != "a b c" {
		t.Errorf("Expected 'a b c', got %q", got)
	}
}

func TestRowClusterer_SeparateRows(t *testing.T) {
	tokens := []Token{
		makeToken("row1", 0.1, 0.10),
		makeToken("row2", 0.1, 0.15),
		makeToken("row3", 0.1, 0.20),
	}

	rows := NewRowClusterer().Cluster(tokens)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	for i, want := range []string{"row1", "row2", "row3"} {
		if rows[i].Text() != want {
			t.Errorf("Row %d: expected %q, got %q", i, want, rows[i].Text())
		}
	}
}

func TestRowClusterer_RunningMeanAbsorbsSkew(t *testing.T) {
	// Each token drifts 1% of page height from the previous, within
	// tolerance of the running mean at every step, so a slightly
	// skewed row still merges into one.
	tokens := []Token{
		makeToken("a", 0.1, 0.200),
		makeToken("b", 0.3, 0.210),
		makeToken("c", 0.5, 0.215),
	}

	rows := NewRowClusterer().Cluster(tokens)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 merged row, got %d", len(rows))
	}
}

func TestRowClusterer_TopToBottomOrder(t *testing.T) {
	tokens := []Token{
		makeToken("bottom", 0.1, 0.9),
		makeToken("top", 0.1, 0.1),
		makeToken("middle", 0.1, 0.5),
	}

	rows := NewRowClusterer().Cluster(tokens)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].Text() != "top" || rows[2].Text() != "bottom" {
		t.Errorf("Rows not in top-to-bottom order: %q, %q, %q",
			rows[0].Text(), rows[1].Text(), rows[2].Text())
	}
}

func TestRowClusterer_CustomTolerance(t *testing.T) {
	tokens := []Token{
		makeToken("a", 0.1, 0.10),
		makeToken("b", 0.2, 0.14),
	}

	// Default tolerance keeps them apart.
	if rows := NewRowClusterer().Cluster(tokens); len(rows) != 2 {
		t.Errorf("Expected 2 rows at default tolerance, got %d", len(rows))
	}

	// A wide band merges them.
	wide := NewRowClustererWithConfig(RowConfig{CenterTolerance: 0.05})
	if rows := wide.Cluster(tokens); len(rows) != 1 {
		t.Errorf("Expected 1 row at 0.05 tolerance, got %d", len(rows))
	}
}

func TestRowClusterer_Deterministic(t *testing.T) {
	tokens := []Token{
		makeToken("x", 0.4, 0.30),
		makeToken("y", 0.2, 0.30),
		makeToken("z", 0.2, 0.31),
	}

	first := NewRowClusterer().Cluster(tokens)
	second := NewRowClusterer().Cluster(tokens)

	if len(first) != len(second) {
		t.Fatalf("Row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text() != second[i].Text() {
			t.Errorf("Row %d differs between runs: %q vs %q",
				i, first[i].Text(), second[i].Text())
		}
	}
}
