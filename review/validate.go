package review

import (
	"fmt"
	"strings"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// Check names. The checks appear in the validation result in this
// fixed order regardless of input.
const (
	CheckPointsEquation = "points_equation"
	CheckFoulSanity     = "foul_sanity"
	CheckTeamSum        = "team_sum"
)

// maxPersonalFouls is the foul-out ceiling under high-school rules.
const maxPersonalFouls = 5

// Validate runs cross-field consistency checks over the extracted
// roster and team totals. It derives a verdict purely from its inputs
// and never mutates or corrects them; every mismatch becomes a failed
// check plus a review reason for a human. NeedsReview is true exactly
// when at least one review reason was recorded.
func Validate(players []model.Player, totals model.TeamTotals) model.Validation {
	var reasons []string

	checks := []model.Check{
		checkPointsEquation(players, &reasons),
		checkFoulSanity(players, &reasons),
		checkTeamSum(players, totals, &reasons),
	}

	// Advisory only: a mostly-null points column means the scan is
	// probably unusable even if nothing contradicted itself.
	nullPoints := 0
	for _, p := range players {
		if p.TotalPoints == nil {
			nullPoints++
		}
	}
	if len(players) > 0 && nullPoints*2 > len(players) {
		reasons = append(reasons, fmt.Sprintf(
			"%d of %d players have no total points extracted", nullPoints, len(players)))
	}

	if reasons == nil {
		reasons = []string{}
	}
	return model.Validation{
		Checks:        checks,
		NeedsReview:   len(reasons) > 0,
		ReviewReasons: reasons,
	}
}

// checkPointsEquation asserts total == 2*fg2 + 3*fg3 + ft for every
// player whose four operands are all present.
func checkPointsEquation(players []model.Player, reasons *[]string) model.Check {
	var mismatches []string
	for _, p := range players {
		if p.TotalPoints == nil || p.Shooting.FG2Made == nil ||
			p.Shooting.FG3Made == nil || p.Shooting.FTMade == nil {
			continue
		}
		expected := 2**p.Shooting.FG2Made + 3**p.Shooting.FG3Made + *p.Shooting.FTMade
		if *p.TotalPoints != expected {
			detail := fmt.Sprintf("row %d: total %d != computed %d",
				p.RowIndex, *p.TotalPoints, expected)
			mismatches = append(mismatches, detail)
			*reasons = append(*reasons, "points equation mismatch: "+detail)
		}
	}
	if len(mismatches) > 0 {
		return model.Check{
			Name:    CheckPointsEquation,
			Passed:  false,
			Details: strings.Join(mismatches, "; "),
		}
	}
	return model.Check{
		Name:    CheckPointsEquation,
		Passed:  true,
		Details: "all rows consistent",
	}
}

// checkFoulSanity flags foul counts above the rule ceiling. The value
// is reported, never clamped.
func checkFoulSanity(players []model.Player, reasons *[]string) model.Check {
	var offenders []string
	for _, p := range players {
		if p.PersonalFouls != nil && *p.PersonalFouls > maxPersonalFouls {
			detail := fmt.Sprintf("row %d: %d fouls", p.RowIndex, *p.PersonalFouls)
			offenders = append(offenders, detail)
			*reasons = append(*reasons, "personal fouls above ceiling: "+detail)
		}
	}
	if len(offenders) > 0 {
		return model.Check{
			Name:    CheckFoulSanity,
			Passed:  false,
			Details: strings.Join(offenders, "; "),
		}
	}
	return model.Check{
		Name:    CheckFoulSanity,
		Passed:  true,
		Details: fmt.Sprintf("no player above %d fouls", maxPersonalFouls),
	}
}

// checkTeamSum compares the printed team total against the sum of
// player totals when both sides exist.
func checkTeamSum(players []model.Player, totals model.TeamTotals, reasons *[]string) model.Check {
	if totals.TotalPoints == nil {
		return model.Check{
			Name:    CheckTeamSum,
			Passed:  true,
			Details: "no team total extracted",
		}
	}

	sum := 0
	for _, p := range players {
		if p.TotalPoints != nil {
			sum += *p.TotalPoints
		}
	}
	if sum <= 0 {
		return model.Check{
			Name:    CheckTeamSum,
			Passed:  true,
			Details: "no player points to sum",
		}
	}

	if *totals.TotalPoints != sum {
		detail := fmt.Sprintf("team total %d != player sum %d", *totals.TotalPoints, sum)
		*reasons = append(*reasons, "team total disagrees with player sum: "+detail)
		return model.Check{Name: CheckTeamSum, Passed: false, Details: detail}
	}
	return model.Check{
		Name:    CheckTeamSum,
		Passed:  true,
		Details: fmt.Sprintf("team total %d matches player sum", sum),
	}
}
