package view

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mauv0809/tennis-ledger/internal/stats"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// CSVHeader is the header row of a match export.
var CSVHeader = []string{"Date", "Team A", "Team B", "Winner", "Score", "Duration (min)", "Court", "Status"}

// MatchesCSV writes matches as CSV in the order given. Every cell is quoted.
func MatchesCSV(w io.Writer, matches []tennis.Match) error {
	rows := make([]string, 0, len(matches)+1)
	rows = append(rows, csvRow(CSVHeader))
	for _, m := range matches {
		rows = append(rows, csvRow([]string{
			m.Date.Format(DateTimeLayout),
			TeamAName(m),
			TeamBName(m),
			MatchWinnerLabel(m),
			MatchScore(m),
			strconv.Itoa(m.Duration),
			m.CourtName,
			string(m.Status),
		}))
	}
	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

func csvRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// RecentLimit is how many matches a share summary lists.
const RecentLimit = 5

// ShareSummary renders a plain-text digest of s and the most recent matches.
// matches is not reordered; the recent list is taken from a sorted copy.
func ShareSummary(s stats.MatchStats, matches []tennis.Match) string {
	players := make(map[string]struct{})
	for _, m := range matches {
		for _, p := range m.Players() {
			if p.ID != "" {
				players[p.ID] = struct{}{}
			}
		}
	}

	var b strings.Builder
	b.WriteString("Tennis match summary\n\n")
	fmt.Fprintf(&b, "Total matches: %d\n", s.TotalMatches)
	fmt.Fprintf(&b, "Completed matches: %d\n", s.CompletedMatches)
	fmt.Fprintf(&b, "Average duration: %s\n", DurationLabel(int(math.Round(s.AverageDuration))))
	fmt.Fprintf(&b, "Players: %d\n\n", len(players))

	b.WriteString("Recent results:\n")
	for _, m := range RecentMatches(matches, RecentLimit) {
		fmt.Fprintf(&b, "%s - %s (%s)\n", m.Date.Format(DateTimeLayout), MatchWinnerLabel(m), MatchScore(m))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RecentMatches returns up to limit matches, newest first, without touching matches.
func RecentMatches(matches []tennis.Match, limit int) []tennis.Match {
	sorted := append([]tennis.Match(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
