package tennis_test

import (
	"testing"
	"time"

	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineup() tennis.Lineup {
	return tennis.Lineup{
		A1: tennis.Player{ID: "p1", Name: "Ana"},
		A2: tennis.Player{ID: "p2", Name: "Ben"},
		B1: tennis.Player{ID: "p3", Name: "Cleo"},
		B2: tennis.Player{ID: "p4", Name: "Dan"},
	}
}

func TestNewDoublesResult(t *testing.T) {
	details := tennis.MatchDetails{
		ScheduleID: "s1",
		Date:       time.Date(2025, 5, 3, 10, 0, 0, 0, time.UTC),
		Court:      tennis.Court{ID: "c1", Name: "Court 1"},
		Duration:   90,
	}

	tests := []struct {
		result       tennis.Result
		teamA, teamB int
	}{
		{tennis.ResultTeamA, 6, 4},
		{tennis.ResultTeamB, 4, 6},
		{tennis.ResultDraw, 5, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.result), func(t *testing.T) {
			m, err := tennis.NewDoublesResult(lineup(), tt.result, details)
			require.NoError(t, err)
			require.Len(t, m.Sets, 1)
			assert.Equal(t, 1, m.Sets[0].SetNumber)
			assert.Equal(t, tt.teamA, m.Sets[0].TeamAScore)
			assert.Equal(t, tt.teamB, m.Sets[0].TeamBScore)
			assert.Equal(t, tt.result, m.Sets[0].Result)
			assert.Equal(t, tt.result, m.Result)
			assert.Equal(t, tennis.MatchStatusCompleted, m.Status)
			assert.Equal(t, "c1", m.CourtID)
			assert.Equal(t, "Court 1", m.CourtName)
			assert.Equal(t, "s1", m.ScheduleID)
			assert.Equal(t, 90, m.Duration)
		})
	}
}

func TestNewScoredMatch(t *testing.T) {
	sets := []tennis.ScoredSet{
		{SetNumber: 3, TeamAScore: 6, TeamBScore: 2},
		{SetNumber: 1, TeamAScore: 3, TeamBScore: 6, Duration: 40},
		{SetNumber: 2, TeamAScore: 5, TeamBScore: 5},
	}

	m, err := tennis.NewScoredMatch(lineup(), sets, tennis.ResultTeamA, tennis.MatchDetails{Duration: 100})
	require.NoError(t, err)
	require.Len(t, m.Sets, 3)

	assert.Equal(t, 3, m.Sets[0].SetNumber, "stored order is kept")
	assert.Equal(t, tennis.ResultTeamA, m.Sets[0].Result)
	assert.Equal(t, tennis.ResultTeamB, m.Sets[1].Result)
	assert.Equal(t, 40, m.Sets[1].Duration)
	assert.Equal(t, tennis.ResultTeamB, m.Sets[2].Result, "a level set goes to team B")
	assert.Equal(t, tennis.ResultTeamA, m.Result, "overall winner is taken as given")
}

func TestRecordingRejectsDuplicatePlayers(t *testing.T) {
	l := lineup()
	l.B2 = l.A1

	_, err := tennis.NewDoublesResult(l, tennis.ResultTeamA, tennis.MatchDetails{})
	assert.ErrorIs(t, err, tennis.ErrDuplicatePlayer)

	_, err = tennis.NewScoredMatch(l, nil, tennis.ResultTeamA, tennis.MatchDetails{})
	assert.ErrorIs(t, err, tennis.ErrDuplicatePlayer)
}

func TestMatchMembership(t *testing.T) {
	m, err := tennis.NewDoublesResult(lineup(), tennis.ResultTeamB, tennis.MatchDetails{})
	require.NoError(t, err)

	assert.True(t, m.HasPlayer("p4"))
	assert.False(t, m.HasPlayer("p9"))
	assert.True(t, m.Won("p3"))
	assert.False(t, m.Won("p1"))
	assert.False(t, m.Won(""))

	team, ok := m.TeamOf("p2")
	assert.True(t, ok)
	assert.Equal(t, tennis.ResultTeamA, team)
	_, ok = m.TeamOf("p9")
	assert.False(t, ok)
}
