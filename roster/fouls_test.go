package roster

import (
	"strings"
	"testing"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
)

func foulsZone(texts ...string) []layout.Token {
	tokens := make([]layout.Token, 0, len(texts))
	for i, text := range texts {
		tokens = append(tokens, tok(text, 0.34+float64(i)*0.025))
	}
	return tokens
}

func TestFoulCounter_MergedMarks(t *testing.T) {
	count, flags := NewFoulCounter().Count(foulsZone("P1X", "P2X", "P3", "P4", "P5"))

	if count == nil || *count != 2 {
		t.Fatalf("Expected 2 fouls, got %v", count)
	}
	if len(flags) != 1 || !strings.HasPrefix(flags[0], FlagFoulsMarkedSlots) {
		t.Fatalf("Expected marked-slots flag, got %v", flags)
	}
	if !strings.Contains(flags[0], "P1,P2") {
		t.Errorf("Expected slot list P1,P2 in flag, got %q", flags[0])
	}
}

func TestFoulCounter_MergedMarksBeatConfidenceDrop(t *testing.T) {
	// Even with confidences that would satisfy the drop inference,
	// the merged-label strategy decides first.
	tokens := []layout.Token{
		tokConf("P1X", 0.34, 0.5),
		tokConf("P2X", 0.365, 0.5),
		tokConf("P3", 0.39, 0.95),
		tokConf("P4", 0.415, 0.95),
		tokConf("P5", 0.44, 0.95),
	}

	count, flags := NewFoulCounter().Count(tokens)
	if count == nil || *count != 2 {
		t.Fatalf("Expected merged-label count 2, got %v", count)
	}
	if flags[0] == FlagFoulsConfidenceInferred {
		t.Error("Confidence inference must not run when merged marks decided")
	}
}

func TestFoulCounter_MergedMarkVariants(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"P1/", 1},
		{"P2\\", 1},
		{"P3×", 1},
		{"P4|", 1},
		{"p5x", 1},
	}
	for _, tt := range tests {
		count, _ := NewFoulCounter().Count(foulsZone(tt.text))
		if count == nil || *count != tt.want {
			t.Errorf("Count(%q) = %v, want %d", tt.text, count, tt.want)
		}
	}
}

func TestFoulCounter_GarbledOverlayStillMarked(t *testing.T) {
	// Extra characters that are not recognizable mark glyphs still
	// mark the slot: something was written over the label.
	count, _ := NewFoulCounter().Count(foulsZone("P1K", "P2", "P3"))
	if count == nil || *count != 1 {
		t.Fatalf("Expected garbled overlay to count as 1 mark, got %v", count)
	}
}

func TestFoulCounter_DistinctSlotsNotTokens(t *testing.T) {
	// The same slot marked in two tokens counts once.
	count, _ := NewFoulCounter().Count(foulsZone("P1X", "P1/"))
	if count == nil || *count != 1 {
		t.Fatalf("Expected 1 distinct marked slot, got %v", count)
	}
}

func TestFoulCounter_StandaloneMarks(t *testing.T) {
	count, flags := NewFoulCounter().Count(foulsZone("X", "X", "/"))
	if count == nil || *count != 3 {
		t.Fatalf("Expected 3 fouls from mark tokens, got %v", count)
	}
	if len(flags) != 1 || flags[0] != FlagFoulsMarkTokens {
		t.Errorf("Expected mark-tokens flag, got %v", flags)
	}
}

func TestFoulCounter_StandaloneMarksCappedAtFive(t *testing.T) {
	count, _ := NewFoulCounter().Count(foulsZone("X", "X", "X", "X", "X", "X", "X"))
	if count == nil || *count != 5 {
		t.Fatalf("Expected cap at 5, got %v", count)
	}
}

func TestFoulCounter_RepeatedGlyphsAreOneToken(t *testing.T) {
	count, _ := NewFoulCounter().Count(foulsZone("XX"))
	if count == nil || *count != 1 {
		t.Fatalf("Expected 1 foul from one repeated-glyph token, got %v", count)
	}
}

func TestFoulCounter_WrittenTotal(t *testing.T) {
	count, flags := NewFoulCounter().Count(foulsZone("P1", "P2", "3"))
	if count == nil || *count != 3 {
		t.Fatalf("Expected written total 3, got %v", count)
	}
	if len(flags) != 1 || flags[0] != FlagFoulsWrittenTotal {
		t.Errorf("Expected written-total flag, got %v", flags)
	}
}

func TestFoulCounter_WrittenTotalRejectsOutOfRange(t *testing.T) {
	count, flags := NewFoulCounter().Count(foulsZone("P1", "P2", "7"))
	if count != nil {
		t.Fatalf("Expected no decision from digit 7, got %d", *count)
	}
	if len(flags) != 1 || flags[0] != FlagFoulsNotDetermined {
		t.Errorf("Expected not-determined flag, got %v", flags)
	}
}

func TestFoulCounter_ConfidenceDrop(t *testing.T) {
	tokens := []layout.Token{
		tokConf("P1", 0.34, 0.55),
		tokConf("P2", 0.365, 0.93),
		tokConf("P3", 0.39, 0.95),
		tokConf("P4", 0.415, 0.94),
		tokConf("P5", 0.44, 0.96),
	}

	count, flags := NewFoulCounter().Count(tokens)
	if count == nil || *count != 1 {
		t.Fatalf("Expected 1 inferred foul, got %v", count)
	}
	if len(flags) != 1 || flags[0] != FlagFoulsConfidenceInferred {
		t.Errorf("Expected confidence-inferred flag, got %v", flags)
	}
}

func TestFoulCounter_ConfidenceDropAllQualifyIsNoDecision(t *testing.T) {
	// Uniformly low confidence says nothing about marks; with every
	// slot below threshold the strategy must stay silent.
	tokens := []layout.Token{
		tokConf("P1", 0.34, 0.2),
		tokConf("P2", 0.365, 0.9),
	}
	// Mean 0.55; only P1 qualifies: decision.
	count, _ := NewFoulCounter().Count(tokens)
	if count == nil || *count != 1 {
		t.Fatalf("Expected 1 inferred foul, got %v", count)
	}

	uniform := []layout.Token{
		tokConf("P1", 0.34, 0.9),
		tokConf("P2", 0.365, 0.9),
		tokConf("P3", 0.39, 0.9),
	}
	count, flags := NewFoulCounter().Count(uniform)
	if count != nil {
		t.Fatalf("Expected no decision from uniform confidence, got %d", *count)
	}
	if len(flags) != 1 || flags[0] != FlagFoulsNotDetermined {
		t.Errorf("Expected not-determined flag, got %v", flags)
	}
}

func TestFoulCounter_ConfigurableThreshold(t *testing.T) {
	tokens := []layout.Token{
		tokConf("P1", 0.34, 0.80),
		tokConf("P2", 0.365, 0.95),
		tokConf("P3", 0.39, 0.95),
	}
	// Mean 0.90; P1 is 0.10 below: inside the default 0.15 band, so
	// no inference.
	count, _ := NewFoulCounter().Count(tokens)
	if count != nil {
		t.Fatalf("Expected no decision at default threshold, got %d", *count)
	}

	// A tighter threshold makes the same drop significant.
	tight := NewFoulCounterWithConfig(FoulConfig{ConfidenceDrop: 0.05})
	count, _ = tight.Count(tokens)
	if count == nil || *count != 1 {
		t.Fatalf("Expected 1 inferred foul at 0.05 threshold, got %v", count)
	}
}

func TestFoulCounter_CleanSlotsNotDetermined(t *testing.T) {
	count, flags := NewFoulCounter().Count(foulsZone("P1", "P2", "P3", "P4", "P5"))
	if count != nil {
		t.Fatalf("Expected nil count for clean slots, got %d", *count)
	}
	if len(flags) != 1 || flags[0] != FlagFoulsNotDetermined {
		t.Errorf("Expected not-determined flag, got %v", flags)
	}
}

func TestFoulCounter_EmptyZone(t *testing.T) {
	count, flags := NewFoulCounter().Count(nil)
	if count != nil || flags != nil {
		t.Error("Expected silent nil for an empty fouls zone")
	}
}
