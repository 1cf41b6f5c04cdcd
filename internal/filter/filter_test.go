package filter_test

import (
	"testing"
	"time"

	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
}

func testMatches() []tennis.Match {
	mk := func(id string, date time.Time, court string, status tennis.MatchStatus, players ...string) tennis.Match {
		return tennis.Match{
			ID:       id,
			Date:     date,
			CourtID:  court,
			Status:   status,
			PlayerA1: tennis.Player{ID: players[0]},
			PlayerA2: tennis.Player{ID: players[1]},
			PlayerB1: tennis.Player{ID: players[2]},
			PlayerB2: tennis.Player{ID: players[3]},
		}
	}
	return []tennis.Match{
		mk("m1", day(1, 9), "c1", tennis.MatchStatusCompleted, "p1", "p2", "p3", "p4"),
		mk("m2", day(5, 18), "c2", tennis.MatchStatusCompleted, "p5", "p2", "p6", "p7"),
		mk("m3", day(10, 20), "c1", tennis.MatchStatusCancelled, "p5", "p6", "p7", "p8"),
		mk("m4", day(3, 7), "c2", tennis.MatchStatusCompleted, "p8", "p7", "p6", "p1"),
	}
}

func ids(matches []tennis.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		filters  filter.MatchFilters
		expected []string
	}{
		{"no filters", filter.MatchFilters{}, []string{"m1", "m2", "m3", "m4"}},
		{"date from is inclusive", filter.MatchFilters{DateFrom: day(5, 18)}, []string{"m2", "m3"}},
		{"date to is inclusive", filter.MatchFilters{DateTo: day(3, 7)}, []string{"m1", "m4"}},
		{"date to compares exactly", filter.MatchFilters{DateTo: day(5, 0)}, []string{"m1", "m4"}},
		{"end of day includes the evening", filter.MatchFilters{DateTo: filter.EndOfDay(day(5, 0))}, []string{"m1", "m2", "m4"}},
		{"player in any slot", filter.MatchFilters{PlayerID: "p1"}, []string{"m1", "m4"}},
		{"player in last slot only", filter.MatchFilters{PlayerID: "p4"}, []string{"m1"}},
		{"court", filter.MatchFilters{CourtID: "c2"}, []string{"m2", "m4"}},
		{"status", filter.MatchFilters{Status: tennis.MatchStatusCancelled}, []string{"m3"}},
		{"criteria combine with and", filter.MatchFilters{PlayerID: "p7", CourtID: "c2", DateFrom: day(4, 0)}, []string{"m2"}},
		{"nothing matches", filter.MatchFilters{PlayerID: "nobody"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testMatches()
			got := filter.Matches(input, tt.filters)
			assert.Equal(t, tt.expected, ids(got))
			assert.LessOrEqual(t, len(got), len(input))
			assert.Equal(t, testMatches(), input, "input must not be modified")
		})
	}
}

func TestMatches_EmptyFilterReturnsCopy(t *testing.T) {
	input := testMatches()
	got := filter.Matches(input, filter.MatchFilters{})
	require.Equal(t, input, got)

	got[0].ID = "changed"
	assert.Equal(t, "m1", input[0].ID, "result must be a new slice")
}

func TestMatches_NilInput(t *testing.T) {
	got := filter.Matches(nil, filter.MatchFilters{PlayerID: "p1"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSchedules(t *testing.T) {
	schedules := []tennis.Schedule{
		{ID: "s1", Date: day(1, 0), Status: tennis.ScheduleStatusScheduled, Players: []tennis.Player{{ID: "p1"}, {ID: "p2"}}},
		{ID: "s2", Date: day(2, 0), Status: tennis.ScheduleStatusCancelled, Players: []tennis.Player{{ID: "p2"}, {ID: "p3"}, {ID: "p4"}}},
		{ID: "s3", Date: day(3, 0), Status: tennis.ScheduleStatusScheduled, Players: []tennis.Player{{ID: "p4"}, {ID: "p5"}}},
	}
	scheduleIDs := func(ss []tennis.Schedule) []string {
		out := make([]string, 0, len(ss))
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		filters  filter.ScheduleFilters
		expected []string
	}{
		{"no filters", filter.ScheduleFilters{}, []string{"s1", "s2", "s3"}},
		{"date range", filter.ScheduleFilters{DateFrom: day(2, 0), DateTo: day(3, 0)}, []string{"s2", "s3"}},
		{"player", filter.ScheduleFilters{PlayerID: "p4"}, []string{"s2", "s3"}},
		{"status", filter.ScheduleFilters{Status: tennis.ScheduleStatusScheduled}, []string{"s1", "s3"}},
		{"combined", filter.ScheduleFilters{PlayerID: "p2", Status: tennis.ScheduleStatusScheduled}, []string{"s1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scheduleIDs(filter.Schedules(schedules, tt.filters)))
		})
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, filter.MatchFilters{}.IsZero())
	assert.False(t, filter.MatchFilters{CourtID: "c1"}.IsZero())
	assert.True(t, filter.ScheduleFilters{}.IsZero())
	assert.False(t, filter.ScheduleFilters{DateFrom: day(1, 0)}.IsZero())
}

func TestEndOfDay(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	end := filter.EndOfDay(time.Date(2025, 2, 28, 13, 45, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 999999999, loc), end)
	assert.True(t, end.Add(time.Nanosecond).Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, loc)))
}
