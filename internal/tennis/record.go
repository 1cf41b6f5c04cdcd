package tennis

import (
	"errors"
	"time"
)

// ErrDuplicatePlayer is returned when the same player fills more than one slot of a match.
var ErrDuplicatePlayer = errors.New("a player cannot appear more than once in a match")

// Lineup holds the four players of a doubles match.
type Lineup struct {
	A1, A2, B1, B2 Player
}

// Distinct reports whether the four players are pairwise distinct.
func (l Lineup) Distinct() bool {
	seen := make(map[string]struct{}, 4)
	for _, p := range []Player{l.A1, l.A2, l.B1, l.B2} {
		if _, ok := seen[p.ID]; ok {
			return false
		}
		seen[p.ID] = struct{}{}
	}
	return true
}

// MatchDetails carries the fields shared by both recording paths.
type MatchDetails struct {
	ScheduleID string
	Date       time.Time
	Court      Court
	Duration   int
	Notes      string
}

// NewDoublesResult builds a match from an explicitly chosen result. Only the
// outcome is known, so one set with an illustrative score is fabricated from
// it: 6-4 for team A, 4-6 for team B and 5-5 for a draw.
func NewDoublesResult(lineup Lineup, result Result, details MatchDetails) (Match, error) {
	if !lineup.Distinct() {
		return Match{}, ErrDuplicatePlayer
	}
	teamA, teamB := 5, 5
	switch result {
	case ResultTeamA:
		teamA, teamB = 6, 4
	case ResultTeamB:
		teamA, teamB = 4, 6
	}
	set := Set{SetNumber: 1, TeamAScore: teamA, TeamBScore: teamB, Result: result}
	return newMatch(lineup, []Set{set}, result, details), nil
}

// ScoredSet is a set as entered with raw scores.
type ScoredSet struct {
	SetNumber  int
	TeamAScore int
	TeamBScore int
	Duration   int
}

// NewScoredMatch builds a match from raw set scores. Each set's result is
// derived from its score; a level set goes to team B. The overall winner is
// chosen by the caller and is not derived from the sets.
func NewScoredMatch(lineup Lineup, sets []ScoredSet, winner Result, details MatchDetails) (Match, error) {
	if !lineup.Distinct() {
		return Match{}, ErrDuplicatePlayer
	}
	out := make([]Set, 0, len(sets))
	for _, s := range sets {
		result := ResultTeamB
		if s.TeamAScore > s.TeamBScore {
			result = ResultTeamA
		}
		out = append(out, Set{
			SetNumber:  s.SetNumber,
			TeamAScore: s.TeamAScore,
			TeamBScore: s.TeamBScore,
			Result:     result,
			Duration:   s.Duration,
		})
	}
	return newMatch(lineup, out, winner, details), nil
}

func newMatch(lineup Lineup, sets []Set, result Result, details MatchDetails) Match {
	return Match{
		ScheduleID: details.ScheduleID,
		Date:       details.Date,
		PlayerA1:   lineup.A1,
		PlayerA2:   lineup.A2,
		PlayerB1:   lineup.B1,
		PlayerB2:   lineup.B2,
		Sets:       sets,
		Result:     result,
		Duration:   details.Duration,
		Status:     MatchStatusCompleted,
		Notes:      details.Notes,
		CourtID:    details.Court.ID,
		CourtName:  details.Court.Name,
	}
}
