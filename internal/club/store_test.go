package club_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/database"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store   club.ClubStore
	db      *sql.DB
	clock   *clock.Mock
	metrics *metrics.Mock
}

// setupTestDB creates an in-memory SQLite database and an empty store on top of it.
func setupTestDB(t *testing.T) *testEnv {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	clk := clock.NewMock()
	m := metrics.NewMock()
	return &testEnv{store: club.New(db, m, clk), db: db, clock: clk, metrics: m}
}

// reload builds a second store over the same database.
func (e *testEnv) reload(t *testing.T) club.ClubStore {
	t.Helper()
	s := club.New(e.db, metrics.NewMock(), e.clock)
	require.NoError(t, s.LoadAll())
	return s
}

func (e *testEnv) addPlayers(t *testing.T, names ...string) []tennis.Player {
	t.Helper()
	players := make([]tennis.Player, 0, len(names))
	for _, name := range names {
		p, err := e.store.AddPlayer(club.PlayerInput{Name: name, SkillLevel: tennis.SkillIntermediate})
		require.NoError(t, err)
		players = append(players, p)
		e.clock.Add(time.Minute)
	}
	return players
}

func lineupOf(p []tennis.Player) club.MatchLineup {
	return club.MatchLineup{PlayerA1: p[0].ID, PlayerA2: p[1].ID, PlayerB1: p[2].ID, PlayerB2: p[3].ID}
}

func TestAddAndLoadPlayers(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben")

	got := env.store.Players()
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name, "new players are appended")
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, 2, env.metrics.StoreWrites("player", "add"))

	loaded := env.reload(t).Players()
	assert.Equal(t, []tennis.Player{players[1], players[0]}, loaded, "loaded players are newest first")
}

func TestAddPlayer_Validation(t *testing.T) {
	env := setupTestDB(t)

	tests := []struct {
		name  string
		input club.PlayerInput
	}{
		{"missing name", club.PlayerInput{Name: "  ", SkillLevel: tennis.SkillBeginner}},
		{"unknown skill", club.PlayerInput{Name: "Ana", SkillLevel: "pro"}},
		{"bad email", club.PlayerInput{Name: "Ana", SkillLevel: tennis.SkillBeginner, Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.store.AddPlayer(tt.input)
			assert.ErrorIs(t, err, club.ErrInvalidInput)
		})
	}
	assert.Empty(t, env.store.Players())
}

func TestUpdatePlayer(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben")
	_, err := env.store.AddSchedule(club.ScheduleInput{
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PlayerIDs: []string{players[0].ID, players[1].ID},
	})
	require.NoError(t, err)

	name := "Anna"
	level := tennis.SkillAdvanced
	updated, err := env.store.UpdatePlayer(players[0].ID, club.PlayerPatch{Name: &name, SkillLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, tennis.SkillAdvanced, updated.SkillLevel)
	assert.Equal(t, players[0].CreatedAt, updated.CreatedAt)

	assert.Equal(t, "Anna", env.store.Schedules()[0].Players[0].Name, "schedules list the current player")
	reloaded, err := env.reload(t).GetPlayer(players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)

	_, err = env.store.UpdatePlayer("missing", club.PlayerPatch{Name: &name})
	assert.ErrorIs(t, err, club.ErrNotFound)
}

func TestPlayersBySkill(t *testing.T) {
	env := setupTestDB(t)
	_, err := env.store.AddPlayer(club.PlayerInput{Name: "Ana", SkillLevel: tennis.SkillBeginner})
	require.NoError(t, err)
	_, err = env.store.AddPlayer(club.PlayerInput{Name: "Ben", SkillLevel: tennis.SkillAdvanced})
	require.NoError(t, err)

	beginners := env.store.PlayersBySkill(tennis.SkillBeginner)
	require.Len(t, beginners, 1)
	assert.Equal(t, "Ana", beginners[0].Name)
	assert.Empty(t, env.store.PlayersBySkill(tennis.SkillIntermediate))
}

func TestCourts(t *testing.T) {
	env := setupTestDB(t)

	inactive := false
	c1, err := env.store.AddCourt(club.CourtInput{Name: "Court 1", Surface: tennis.SurfaceClay})
	require.NoError(t, err)
	c2, err := env.store.AddCourt(club.CourtInput{Name: "Court 2", Surface: tennis.SurfaceHard, IsIndoor: true, IsActive: &inactive})
	require.NoError(t, err)

	assert.True(t, c1.IsActive, "courts are active by default")
	assert.Equal(t, []tennis.Court{c1}, env.store.ActiveCourts())

	active := true
	c2, err = env.store.UpdateCourt(c2.ID, club.CourtPatch{IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, env.store.ActiveCourts(), 2)
	assert.ElementsMatch(t, env.store.Courts(), env.reload(t).Courts())

	require.NoError(t, env.store.DeleteCourt(c1.ID))
	assert.Equal(t, []tennis.Court{c2}, env.store.Courts())
	assert.ErrorIs(t, env.store.DeleteCourt(c1.ID), club.ErrNotFound)

	_, err = env.store.AddCourt(club.CourtInput{Name: "Court 3", Surface: "ice"})
	assert.ErrorIs(t, err, club.ErrInvalidInput)
}

func TestSchedules(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo")

	_, err := env.store.AddSchedule(club.ScheduleInput{
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PlayerIDs: []string{players[0].ID},
	})
	assert.ErrorIs(t, err, club.ErrInvalidInput, "a schedule needs at least two players")

	_, err = env.store.AddSchedule(club.ScheduleInput{
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PlayerIDs: []string{players[0].ID, "ghost"},
	})
	assert.ErrorIs(t, err, club.ErrInvalidInput)

	first, err := env.store.AddSchedule(club.ScheduleInput{
		Date:      time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC),
		PlayerIDs: []string{players[0].ID, players[1].ID},
		Notes:     "bring balls",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), first.Date, "dates are kept at day granularity")
	assert.Equal(t, tennis.ScheduleStatusScheduled, first.Status)

	second, err := env.store.AddSchedule(club.ScheduleInput{
		Date:      time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		PlayerIDs: []string{players[1].ID, players[2].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, second.ID, env.store.Schedules()[0].ID, "new schedules are listed first")

	cancelled := tennis.ScheduleStatusCancelled
	updated, err := env.store.UpdateSchedule(first.ID, club.SchedulePatch{
		Status:    &cancelled,
		PlayerIDs: []string{players[0].ID, players[2].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, tennis.ScheduleStatusCancelled, updated.Status)
	assert.True(t, updated.HasPlayer(players[2].ID))
	assert.False(t, updated.HasPlayer(players[1].ID))

	assert.Equal(t, env.store.Schedules(), env.reload(t).Schedules())

	require.NoError(t, env.store.DeleteSchedule(second.ID))
	assert.Len(t, env.store.Schedules(), 1)
	assert.ErrorIs(t, env.store.DeleteSchedule(second.ID), club.ErrNotFound)
}

func TestRecordDoublesResult(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo", "Dan")
	court, err := env.store.AddCourt(club.CourtInput{Name: "Court 3", Surface: tennis.SurfaceHard})
	require.NoError(t, err)

	m, err := env.store.RecordDoublesResult(club.DoublesResultInput{
		MatchLineup: lineupOf(players),
		Date:        time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Result:      tennis.ResultTeamB,
		CourtID:     court.ID,
		Duration:    90,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, tennis.MatchStatusCompleted, m.Status)
	assert.Equal(t, "Court 3", m.CourtName)
	assert.Equal(t, []tennis.Set{{SetNumber: 1, TeamAScore: 4, TeamBScore: 6, Result: tennis.ResultTeamB}}, m.Sets)
	assert.Equal(t, players[3], m.PlayerB2)

	assert.Equal(t, env.store.Matches(), env.reload(t).Matches())
}

func TestRecordScoredMatch(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo", "Dan")

	m, err := env.store.RecordScoredMatch(club.ScoredMatchInput{
		MatchLineup: lineupOf(players),
		Date:        time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		Sets: []club.SetScore{
			{SetNumber: 2, TeamAScore: 6, TeamBScore: 3},
			{SetNumber: 1, TeamAScore: 6, TeamBScore: 6},
		},
		Winner:   tennis.ResultTeamA,
		Duration: 75,
	})
	require.NoError(t, err)

	require.Len(t, m.Sets, 2)
	assert.Equal(t, 2, m.Sets[0].SetNumber, "sets keep the order they were entered in")
	assert.Equal(t, tennis.ResultTeamA, m.Sets[0].Result)
	assert.Equal(t, tennis.ResultTeamB, m.Sets[1].Result, "a level set goes to team B")
	assert.Equal(t, tennis.ResultTeamA, m.Result)

	loaded, err := env.reload(t).GetMatch(m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestRecordMatch_RejectsBadLineups(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo", "Dan")
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	duplicate := lineupOf(players)
	duplicate.PlayerB2 = players[0].ID
	unknown := lineupOf(players)
	unknown.PlayerA2 = "ghost"

	tests := []struct {
		name  string
		input club.DoublesResultInput
	}{
		{"duplicate player", club.DoublesResultInput{MatchLineup: duplicate, Date: date, Result: tennis.ResultTeamA, Duration: 60}},
		{"unknown player", club.DoublesResultInput{MatchLineup: unknown, Date: date, Result: tennis.ResultTeamA, Duration: 60}},
		{"unknown court", club.DoublesResultInput{MatchLineup: lineupOf(players), Date: date, Result: tennis.ResultTeamA, Duration: 60, CourtID: "nowhere"}},
		{"unknown schedule", club.DoublesResultInput{MatchLineup: lineupOf(players), Date: date, Result: tennis.ResultTeamA, Duration: 60, ScheduleID: "nope"}},
		{"bad result", club.DoublesResultInput{MatchLineup: lineupOf(players), Date: date, Result: "both", Duration: 60}},
		{"no duration", club.DoublesResultInput{MatchLineup: lineupOf(players), Date: date, Result: tennis.ResultDraw}},
		{"no date", club.DoublesResultInput{MatchLineup: lineupOf(players), Result: tennis.ResultDraw, Duration: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.store.RecordDoublesResult(tt.input)
			assert.ErrorIs(t, err, club.ErrInvalidInput)
		})
	}
	assert.Empty(t, env.store.Matches())
}

func TestUpdateAndDeleteMatch(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo", "Dan")
	m, err := env.store.RecordDoublesResult(club.DoublesResultInput{
		MatchLineup: lineupOf(players),
		Date:        time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Result:      tennis.ResultTeamA,
		Duration:    60,
	})
	require.NoError(t, err)

	env.clock.Add(time.Hour)
	cancelled := tennis.MatchStatusCancelled
	notes := "rain"
	updated, err := env.store.UpdateMatch(m.ID, club.MatchPatch{Status: &cancelled, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, tennis.MatchStatusCancelled, updated.Status)
	assert.Equal(t, "rain", updated.Notes)
	assert.True(t, updated.UpdatedAt.After(m.UpdatedAt))
	assert.Equal(t, m.Sets, updated.Sets)

	require.NoError(t, env.store.DeleteMatch(m.ID))
	assert.Empty(t, env.store.Matches())
	assert.ErrorIs(t, env.store.DeleteMatch(m.ID), club.ErrNotFound)
	_, err = env.store.GetMatch(m.ID)
	assert.ErrorIs(t, err, club.ErrNotFound)
}

func TestDeletePlayer_KeepsMatchHistory(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo", "Dan")
	_, err := env.store.AddSchedule(club.ScheduleInput{
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PlayerIDs: []string{players[0].ID, players[1].ID, players[2].ID},
	})
	require.NoError(t, err)
	m, err := env.store.RecordDoublesResult(club.DoublesResultInput{
		MatchLineup: lineupOf(players),
		Date:        time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Result:      tennis.ResultTeamA,
		Duration:    60,
	})
	require.NoError(t, err)

	require.NoError(t, env.store.DeletePlayer(players[0].ID))

	_, err = env.store.GetPlayer(players[0].ID)
	assert.ErrorIs(t, err, club.ErrNotFound)
	assert.Len(t, env.store.Schedules()[0].Players, 2)

	reloaded := env.reload(t)
	match, err := reloaded.GetMatch(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", match.PlayerA1.Name, "matches keep the player as recorded")
	assert.Equal(t, env.store.Schedules(), reloaded.Schedules())
}

func TestWriteFailureKeepsLastKnownState(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana")
	require.NoError(t, env.db.Close())

	_, err := env.store.AddPlayer(club.PlayerInput{Name: "Ben", SkillLevel: tennis.SkillBeginner})
	require.Error(t, err)
	assert.NotErrorIs(t, err, club.ErrInvalidInput)

	assert.Error(t, env.store.DeletePlayer(players[0].ID))
	assert.Equal(t, players, env.store.Players())
	assert.Equal(t, 1, env.metrics.StoreFailures("player", "add"))
	assert.Equal(t, 1, env.metrics.StoreFailures("player", "delete"))
}

func TestSnapshotIsACopy(t *testing.T) {
	env := setupTestDB(t)
	players := env.addPlayers(t, "Ana", "Ben", "Cleo", "Dan")
	_, err := env.store.RecordDoublesResult(club.DoublesResultInput{
		MatchLineup: lineupOf(players),
		Date:        time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Result:      tennis.ResultTeamA,
		Duration:    60,
	})
	require.NoError(t, err)

	snap := env.store.Snapshot()
	snap.Players[0].Name = "changed"
	snap.Matches[0].Sets[0].TeamAScore = 0

	assert.Equal(t, "Ana", env.store.Players()[0].Name)
	assert.Equal(t, 6, env.store.Matches()[0].Sets[0].TeamAScore)
}

func TestClear(t *testing.T) {
	env := setupTestDB(t)
	env.addPlayers(t, "Ana", "Ben")

	require.NoError(t, env.store.Clear())
	assert.Empty(t, env.store.Players())
	assert.Empty(t, env.reload(t).Players())
}
