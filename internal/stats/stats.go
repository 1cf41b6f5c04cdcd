package stats

import (
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// Compute builds the summary for matches. It never mutates its input and
// returns a fully defined zero value for an empty collection.
//
// The most active player and court are picked in a single left-to-right scan
// (matches in input order, slots A1, A2, B1, B2): an id replaces the current
// leader only when its running count is strictly greater, so among ids tied
// on the final count the one that reached it first wins.
//
// Win rates only consider completed matches. A player filling several slots
// of one match counts once for that match.
func Compute(matches []tennis.Match) MatchStats {
	result := MatchStats{
		TotalMatches: len(matches),
		WinRate:      make(map[string]float64),
	}

	playerCounts := make(map[string]int)
	courtCounts := make(map[string]int)
	var bestPlayerCount, bestCourtCount int

	played := make(map[string]int)
	wins := make(map[string]int)
	totalDuration := 0

	for _, match := range matches {
		for _, player := range match.Players() {
			if player.ID == "" {
				continue
			}
			playerCounts[player.ID]++
			if playerCounts[player.ID] > bestPlayerCount {
				bestPlayerCount = playerCounts[player.ID]
				result.MostActivePlayer = player.ID
			}
		}

		if match.CourtID != "" {
			courtCounts[match.CourtID]++
			if courtCounts[match.CourtID] > bestCourtCount {
				bestCourtCount = courtCounts[match.CourtID]
				result.MostActiveCourt = match.CourtID
			}
		}

		switch match.Status {
		case tennis.MatchStatusCancelled:
			result.CancelledMatches++
			continue
		case tennis.MatchStatusCompleted:
			result.CompletedMatches++
		default:
			continue
		}

		totalDuration += match.Duration
		for _, id := range distinctPlayerIDs(match) {
			played[id]++
			if match.Won(id) {
				wins[id]++
			}
		}
	}

	if result.CompletedMatches > 0 {
		result.AverageDuration = float64(totalDuration) / float64(result.CompletedMatches)
	}

	for id, n := range played {
		if n > 0 {
			result.WinRate[id] = float64(wins[id]) / float64(n) * 100
		}
	}

	return result
}

// distinctPlayerIDs returns the non-empty player ids of a match, each once, in slot order.
func distinctPlayerIDs(match tennis.Match) []string {
	ids := make([]string, 0, 4)
	for _, player := range match.Players() {
		if player.ID == "" {
			continue
		}
		duplicate := false
		for _, id := range ids {
			if id == player.ID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			ids = append(ids, player.ID)
		}
	}
	return ids
}
