package roster

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/layout"
)

// Flags emitted by foul counting. The flag records which heuristic
// decided (or that none did) so reviewers can weigh the value.
const (
	FlagFoulsMarkedSlots        = "fouls_marked_slots"
	FlagFoulsMarkTokens         = "fouls_mark_tokens"
	FlagFoulsWrittenTotal       = "fouls_written_total"
	FlagFoulsConfidenceInferred = "fouls_confidence_inferred"
	FlagFoulsNotDetermined      = "fouls_not_determined"
)

// FoulConfig holds configuration for foul-mark counting
type FoulConfig struct {
	// ConfidenceDrop is how far below the mean a clean P-slot label's
	// OCR confidence must fall before the slot is inferred marked
	// (default: 0.15). Empirically tuned, not derived.
	ConfidenceDrop float64
}

// DefaultFoulConfig returns sensible default configuration
func DefaultFoulConfig() FoulConfig {
	return FoulConfig{
		ConfidenceDrop: 0.15,
	}
}

// pSlotPattern matches the printed P1..P5 foul-box labels;
// cleanSlotPattern matches a label with nothing merged into it.
var (
	pSlotPattern     = regexp.MustCompile(`P[1-5]`)
	cleanSlotPattern = regexp.MustCompile(`^P[1-5]$`)
)

// markGlyphs are the handwritten cross/slash shapes OCR typically
// produces for a crossed-out foul box. Text is upper-cased before the
// lookup, so lowercase x folds in.
var markGlyphs = map[rune]bool{
	'X': true, '×': true, '✕': true, '✗': true, '✘': true,
	'/': true, '\\': true, '|': true,
}

// foulStrategy is one heuristic for recovering a foul count. Evaluate
// returns ok=false when the strategy has no opinion; strategies are
// tried in priority order and the first decision wins, which keeps the
// priority testable per strategy.
type foulStrategy interface {
	name() string
	evaluate(tokens []layout.Token, cfg FoulConfig) (count int, flags []string, ok bool)
}

// FoulCounter recovers a 0-5 personal-foul count from the fouls-zone
// tokens of one player row, or determines that it is unrecoverable.
type FoulCounter struct {
	config     FoulConfig
	strategies []foulStrategy
}

// NewFoulCounter creates a counter with default configuration
func NewFoulCounter() *FoulCounter {
	return NewFoulCounterWithConfig(DefaultFoulConfig())
}

// NewFoulCounterWithConfig creates a counter with custom configuration
func NewFoulCounterWithConfig(config FoulConfig) *FoulCounter {
	if config.ConfidenceDrop <= 0 {
		config.ConfidenceDrop = DefaultFoulConfig().ConfidenceDrop
	}
	return &FoulCounter{
		config: config,
		strategies: []foulStrategy{
			markedLabelStrategy{},
			standaloneMarkStrategy{},
			writtenTotalStrategy{},
			confidenceDropStrategy{},
		},
	}
}

// Count applies the strategies in priority order, stopping at the first
// decision. When no strategy decides and P-slot labels were visible,
// the count stays nil with an explanatory flag: "zero fouls observed"
// is deliberately distinguished from "zero fouls, unknown".
func (c *FoulCounter) Count(tokens []layout.Token) (*int, []string) {
	if len(tokens) == 0 {
		return nil, nil
	}
	for _, s := range c.strategies {
		if count, flags, ok := s.evaluate(tokens, c.config); ok {
			return &count, flags
		}
	}
	if slotsVisible(tokens) {
		return nil, []string{FlagFoulsNotDetermined}
	}
	return nil, nil
}

// slotsVisible reports whether any token carries a P-slot label.
func slotsVisible(tokens []layout.Token) bool {
	for _, tok := range tokens {
		if pSlotPattern.MatchString(strings.ToUpper(tok.Text)) {
			return true
		}
	}
	return false
}

// normalizeMarkText upper-cases a token and strips internal whitespace
// so merged OCR output like "p1 x" compares uniformly.
func normalizeMarkText(text string) string {
	return strings.Join(strings.Fields(strings.ToUpper(text)), "")
}

// markedLabelStrategy handles OCR output where a handwritten mark
// merged into the printed label, e.g. "P1X" or "P3/". Any extra
// non-whitespace characters on a P-slot label mark that slot; extra
// characters that are not recognizable mark glyphs are a garbled
// overlay and conservatively still count as marked.
type markedLabelStrategy struct{}

func (markedLabelStrategy) name() string { return "merged_label" }

func (markedLabelStrategy) evaluate(tokens []layout.Token, _ FoulConfig) (int, []string, bool) {
	marked := make(map[string]bool)
	for _, tok := range tokens {
		text := normalizeMarkText(tok.Text)
		slots := pSlotPattern.FindAllString(text, -1)
		if len(slots) == 0 {
			continue
		}
		if pSlotPattern.ReplaceAllString(text, "") == "" {
			continue // clean label, no mark
		}
		for _, slot := range slots {
			marked[slot] = true
		}
	}
	if len(marked) == 0 {
		return 0, nil, false
	}

	names := make([]string, 0, len(marked))
	for slot := range marked {
		names = append(names, slot)
	}
	sort.Strings(names)

	count := len(names)
	if count > 5 {
		count = 5
	}
	flag := fmt.Sprintf("%s:%s", FlagFoulsMarkedSlots, strings.Join(names, ","))
	return count, []string{flag}, true
}

// standaloneMarkStrategy counts tokens that are purely mark glyphs
// (possibly repeated, e.g. "XX"), one foul per token, capped at 5.
type standaloneMarkStrategy struct{}

func (standaloneMarkStrategy) name() string { return "standalone_marks" }

func (standaloneMarkStrategy) evaluate(tokens []layout.Token, _ FoulConfig) (int, []string, bool) {
	count := 0
	for _, tok := range tokens {
		text := normalizeMarkText(tok.Text)
		if text == "" || !allMarkGlyphs(text) {
			continue
		}
		count++
	}
	if count == 0 {
		return 0, nil, false
	}
	if count > 5 {
		count = 5
	}
	return count, []string{FlagFoulsMarkTokens}, true
}

func allMarkGlyphs(text string) bool {
	for _, r := range text {
		if !markGlyphs[r] {
			return false
		}
	}
	return true
}

// writtenTotalStrategy accepts an explicitly written foul total: a bare
// digit 0-5 not attached to any P-label.
type writtenTotalStrategy struct{}

func (writtenTotalStrategy) name() string { return "written_total" }

func (writtenTotalStrategy) evaluate(tokens []layout.Token, _ FoulConfig) (int, []string, bool) {
	for _, tok := range tokens {
		text := normalizeMarkText(tok.Text)
		if len(text) == 1 && text[0] >= '0' && text[0] <= '5' {
			return int(text[0] - '0'), []string{FlagFoulsWrittenTotal}, true
		}
	}
	return 0, nil, false
}

// confidenceDropStrategy infers marks from OCR confidence: a pen stroke
// over a printed label lowers its recognition confidence. A clean slot
// whose confidence sits more than ConfidenceDrop below the mean of all
// clean slots is inferred marked. The inference only holds when some
// but not all slots qualify; none or all qualifying is no decision.
type confidenceDropStrategy struct{}

func (confidenceDropStrategy) name() string { return "confidence_drop" }

func (confidenceDropStrategy) evaluate(tokens []layout.Token, cfg FoulConfig) (int, []string, bool) {
	var confidences []float64
	for _, tok := range tokens {
		text := normalizeMarkText(tok.Text)
		if cleanSlotPattern.MatchString(text) && tok.Confidence != nil {
			confidences = append(confidences, *tok.Confidence)
		}
	}
	if len(confidences) < 2 {
		return 0, nil, false
	}

	mean := 0.0
	for _, c := range confidences {
		mean += c
	}
	mean /= float64(len(confidences))

	qualifying := 0
	for _, c := range confidences {
		if c < mean-cfg.ConfidenceDrop {
			qualifying++
		}
	}
	if qualifying == 0 || qualifying == len(confidences) {
		return 0, nil, false
	}
	return qualifying, []string{FlagFoulsConfidenceInferred}, true
}
