package stats

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// Standings builds one line per rostered player over every supplied match,
// ordered by win percentage and then by matches played. Players that are tied
// on both keep their roster order.
func Standings(players []tennis.Player, matches []tennis.Match) []PlayerStanding {
	standings := make([]PlayerStanding, 0, len(players))
	for _, player := range players {
		standing := PlayerStanding{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			SkillLevel: string(player.SkillLevel),
		}
		for _, match := range matches {
			team, ok := match.TeamOf(player.ID)
			if !ok {
				continue
			}
			standing.MatchesPlayed++
			standing.TotalDuration += match.Duration
			if team == match.Result {
				standing.MatchesWon++
			}
		}
		if standing.MatchesPlayed > 0 {
			standing.WinPercentage = (float64(standing.MatchesWon) / float64(standing.MatchesPlayed)) * 100
		}
		standings = append(standings, standing)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].MatchesPlayed > standings[j].MatchesPlayed
	})
	return standings
}

var nonDigits = regexp.MustCompile(`\D`)

// courtNumber extracts the digits of a court name ("Court 12" -> 12). Names
// without digits sort as 0.
func courtNumber(name string) int {
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(name, ""))
	if err != nil {
		return 0
	}
	return n
}

// CourtUsageByCourt reports match count and minutes per court, ordered by the
// number in the court name.
func CourtUsageByCourt(courts []tennis.Court, matches []tennis.Match) []CourtUsage {
	usage := make([]CourtUsage, 0, len(courts))
	for _, court := range courts {
		u := CourtUsage{CourtID: court.ID, CourtName: court.Name}
		for _, match := range matches {
			if match.CourtID != court.ID {
				continue
			}
			u.MatchCount++
			u.TotalDuration += match.Duration
		}
		if u.MatchCount > 0 {
			u.AverageDuration = float64(u.TotalDuration) / float64(u.MatchCount)
		}
		usage = append(usage, u)
	}

	sort.SliceStable(usage, func(i, j int) bool {
		return courtNumber(usage[i].CourtName) < courtNumber(usage[j].CourtName)
	})
	return usage
}

// MonthlyCounts groups matches by calendar month, oldest month first.
func MonthlyCounts(matches []tennis.Match) []MonthCount {
	counts := make(map[string]int)
	for _, match := range matches {
		counts[match.Date.Format("2006-01")]++
	}

	months := make([]MonthCount, 0, len(counts))
	for month, count := range counts {
		months = append(months, MonthCount{Month: month, Count: count})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}
