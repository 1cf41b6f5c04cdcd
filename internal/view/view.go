package view

import (
	"fmt"
	"strings"

	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

const (
	// DrawLabel is shown in place of a winning team when a match is drawn.
	DrawLabel = "Draw"
	// ScoreSeparator separates sets in a score line.
	ScoreSeparator = " / "
	// DateTimeLayout is how match dates are rendered in exports and summaries.
	DateTimeLayout = "2006-01-02 15:04"
)

// TeamName returns the canonical name of a pair, "A & B".
func TeamName(a, b tennis.Player) string {
	return a.Name + " & " + b.Name
}

// PlayerNames joins player names with commas.
func PlayerNames(players []tennis.Player) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// TeamAName returns the name of the A1/A2 pair.
func TeamAName(m tennis.Match) string {
	return TeamName(m.PlayerA1, m.PlayerA2)
}

// TeamBName returns the name of the B1/B2 pair.
func TeamBName(m tennis.Match) string {
	return TeamName(m.PlayerB1, m.PlayerB2)
}

// MatchWinnerLabel names the winning team, or DrawLabel.
func MatchWinnerLabel(m tennis.Match) string {
	switch m.Result {
	case tennis.ResultTeamA:
		return TeamAName(m)
	case tennis.ResultTeamB:
		return TeamBName(m)
	default:
		return DrawLabel
	}
}

// MatchScore renders each set as "a-b" in stored order, not by set number.
func MatchScore(m tennis.Match) string {
	scores := make([]string, 0, len(m.Sets))
	for _, set := range m.Sets {
		scores = append(scores, fmt.Sprintf("%d-%d", set.TeamAScore, set.TeamBScore))
	}
	return strings.Join(scores, ScoreSeparator)
}

// DurationLabel renders minutes as "1h 5m", dropping the hours below an hour.
func DurationLabel(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
