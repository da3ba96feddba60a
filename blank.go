package scoresheet

import (
	"strings"
	"unicode"
)

// DefaultBlankTextThreshold is the minimum number of letters, after
// stripping template vocabulary and numerals, for a page without a
// player table to be considered non-blank.
const DefaultBlankTextThreshold = 15

// templateVocabulary is every word printed on an unfilled sheet of the
// standard template. A truly blank scan OCRs to little besides these.
var templateVocabulary = map[string]bool{
	"PLAYER": true, "PLAYERS": true, "NAME": true,
	"NO": true, "NUM": true, "NUMBER": true,
	"POS": true, "POSITION": true,
	"QUARTERS": true, "QUARTER": true, "PLAYED": true, "QTR": true, "QTRS": true,
	"PERSONAL": true, "FOULS": true, "FOUL": true,
	"SCORING": true, "SUMMARY": true,
	"RUNNING": true, "SCORE": true,
	"TEAM": true, "TOTALS": true, "TOTAL": true,
	"TIME": true, "OUTS": true, "TIMEOUTS": true,
	"TECHNICAL": true, "TECHNICALS": true,
	"COACH": true, "SCORER": true, "TIMER": true, "REFEREE": true,
	"DATE": true, "LOCATION": true, "HOME": true, "VISITOR": true, "VISITORS": true,
	"TURNOVERS": true, "TURNOVER": true,
	"PTS": true, "PT": true, "TP": true, "FTA": true, "FTM": true, "FT": true,
	"POINT": true, "POINTS": true, "MADE": true, "ATT": true, "ATTEMPTS": true,
	"P1": true, "P2": true, "P3": true, "P4": true, "P5": true,
	"Q1": true, "Q2": true, "Q3": true, "Q4": true,
	"1ST": true, "2ND": true, "3RD": true, "4TH": true,
	"VS": true,
}

// StrippedContentLength strips the template's printed vocabulary and
// all numerals from raw page text and counts the letters that remain.
// The count approximates how much handwriting (or foreign content) the
// page carries beyond the empty form itself.
func StrippedContentLength(text string) int {
	count := 0
	for _, word := range strings.Fields(strings.ToUpper(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" || templateVocabulary[word] {
			continue
		}
		for _, r := range word {
			if unicode.IsLetter(r) {
				count++
			}
		}
	}
	return count
}
