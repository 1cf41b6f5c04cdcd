package processor

import (
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/notifier"
	"github.com/mauv0809/tennis-ledger/internal/pubsub"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type testEnv struct {
	store    *club.MockStore
	notifier *notifier.Mock
	metrics  *metrics.Mock
	counters *metrics.MockCounterStore
	pubsub   *pubsub.MockPubSubClient
	proc     *Processor
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    club.NewMock(),
		notifier: notifier.NewMock(),
		metrics:  metrics.NewMock(),
		counters: metrics.NewMockCounterStore(),
		pubsub:   pubsub.NewMock("TEST"),
	}
	env.proc = New(env.store, env.notifier, env.metrics, env.counters, env.pubsub)
	return env
}

var (
	ana  = tennis.Player{ID: "p1", Name: "Ana"}
	ben  = tennis.Player{ID: "p2", Name: "Ben"}
	cleo = tennis.Player{ID: "p3", Name: "Cleo"}
	dan  = tennis.Player{ID: "p4", Name: "Dan"}
)

func match(id string, day int, result tennis.Result) tennis.Match {
	return tennis.Match{
		ID:       id,
		Date:     time.Date(2025, 5, day, 18, 0, 0, 0, time.UTC),
		PlayerA1: ana, PlayerA2: ben, PlayerB1: cleo, PlayerB2: dan,
		Sets:     []tennis.Set{{SetNumber: 1, TeamAScore: 6, TeamBScore: 2, Result: result}},
		Result:   result,
		Duration: 60,
		Status:   tennis.MatchStatusCompleted,
	}
}

func counter(t *testing.T, c *metrics.MockCounterStore, key string) int {
	t.Helper()
	all, err := c.GetAll()
	require.NoError(t, err)
	return all[key]
}

func TestProcessor_MatchRecorded(t *testing.T) {
	t.Run("publishes event and counts the match", func(t *testing.T) {
		env := setup(t)
		m := match("m1", 1, tennis.ResultTeamA)

		env.proc.MatchRecorded(m, false)

		require.Len(t, env.pubsub.SendMessageCalls, 1)
		assert.Equal(t, pubsub.EventMatchRecorded, env.pubsub.SendMessageCalls[0].Topic)
		assert.Equal(t, m, env.pubsub.SendMessageCalls[0].Data)
		assert.Equal(t, 1, env.metrics.EventsPublished())
		assert.Equal(t, 1, counter(t, env.counters, metrics.CounterMatchesRecorded))
	})

	t.Run("dry run does not publish", func(t *testing.T) {
		env := setup(t)

		env.proc.MatchRecorded(match("m1", 1, tennis.ResultTeamA), true)

		assert.Empty(t, env.pubsub.SendMessageCalls)
		assert.Equal(t, 0, env.metrics.EventsPublished())
	})

	t.Run("publish failure is counted", func(t *testing.T) {
		env := setup(t)
		env.pubsub.SendMessageFunc = func(topic pubsub.EventType, data any) error {
			return errors.New("unavailable")
		}

		env.proc.MatchRecorded(match("m1", 1, tennis.ResultTeamA), false)

		assert.Equal(t, 0, env.metrics.EventsPublished())
		assert.Equal(t, 1, env.metrics.EventsFailed())
	})
}

func TestProcessor_HandleMatchRecorded(t *testing.T) {
	t.Run("decodes payload and sends result notification", func(t *testing.T) {
		env := setup(t)
		data, err := msgpack.Marshal(match("m1", 1, tennis.ResultTeamB))
		require.NoError(t, err)

		require.NoError(t, env.proc.HandleMatchRecorded(data, true))

		require.Len(t, env.notifier.SendResultNotificationCalls, 1)
		assert.Equal(t, "m1", env.notifier.SendResultNotificationCalls[0].ID)
		assert.Equal(t, tennis.ResultTeamB, env.notifier.SendResultNotificationCalls[0].Result)
		assert.Equal(t, []bool{true}, env.notifier.DryRuns)
	})

	t.Run("invalid payload", func(t *testing.T) {
		env := setup(t)
		assert.Error(t, env.proc.HandleMatchRecorded([]byte{0xc1}, false))
		assert.Empty(t, env.notifier.SendResultNotificationCalls)
	})

	t.Run("notifier failure is returned", func(t *testing.T) {
		env := setup(t)
		boom := errors.New("slack down")
		env.notifier.SendResultNotificationFunc = func(tennis.Match, bool) error { return boom }
		data, err := msgpack.Marshal(match("m1", 1, tennis.ResultTeamB))
		require.NoError(t, err)

		assert.ErrorIs(t, env.proc.HandleMatchRecorded(data, false), boom)
	})
}

func TestProcessor_StatsAndStandings(t *testing.T) {
	env := setup(t)
	env.store.Data = club.Snapshot{
		Players: []tennis.Player{ana, ben, cleo, dan},
		Matches: []tennis.Match{
			match("m2", 10, tennis.ResultTeamB),
			match("m1", 1, tennis.ResultTeamA),
		},
	}

	s := env.proc.Stats(filter.MatchFilters{DateFrom: time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, 1, s.TotalMatches)
	assert.Equal(t, 1, env.metrics.StatsComputed())

	standings := env.proc.Standings(filter.MatchFilters{})
	require.Len(t, standings, 4)
	for _, st := range standings {
		assert.Equal(t, 2, st.MatchesPlayed)
		assert.Equal(t, 1, st.MatchesWon)
	}

	posted, err := env.proc.PostStandings(filter.MatchFilters{}, false)
	require.NoError(t, err)
	assert.Equal(t, standings, posted)
	require.Len(t, env.notifier.SendStandingsCalls, 1)
}

func TestProcessor_Share(t *testing.T) {
	env := setup(t)
	env.store.Data = club.Snapshot{
		Matches: []tennis.Match{
			match("m2", 10, tennis.ResultTeamB),
			match("m1", 1, tennis.ResultTeamA),
		},
	}

	summary, err := env.proc.Share(filter.MatchFilters{PlayerID: "p1"}, false)
	require.NoError(t, err)

	assert.Contains(t, summary, "Total matches: 2")
	assert.Contains(t, summary, "Players: 4")
	assert.Contains(t, summary, "2025-05-10 18:00 - Cleo & Dan (6-2)")
	require.Len(t, env.notifier.SendShareSummaryCalls, 1)
	assert.Equal(t, summary, env.notifier.SendShareSummaryCalls[0])
	assert.Equal(t, 1, counter(t, env.counters, metrics.CounterSummariesShared))

	t.Run("dry run is not counted", func(t *testing.T) {
		_, err := env.proc.Share(filter.MatchFilters{}, true)
		require.NoError(t, err)
		assert.Equal(t, 1, counter(t, env.counters, metrics.CounterSummariesShared))
	})

	t.Run("notifier failure still returns the summary", func(t *testing.T) {
		env.notifier.SendShareSummaryFunc = func(string, bool) error { return errors.New("down") }
		summary, err := env.proc.Share(filter.MatchFilters{}, false)
		assert.Error(t, err)
		assert.NotEmpty(t, summary)
	})
}

func TestProcessor_ScheduleCreated(t *testing.T) {
	env := setup(t)
	sc := tennis.Schedule{ID: "s1", Players: []tennis.Player{ana, ben}}

	env.proc.ScheduleCreated(sc, false)

	require.Len(t, env.notifier.SendScheduleNotificationCalls, 1)
	assert.Equal(t, "s1", env.notifier.SendScheduleNotificationCalls[0].ID)
}

func TestProcessor_ExportRecorded(t *testing.T) {
	env := setup(t)
	env.proc.ExportRecorded()
	env.proc.ExportRecorded()
	assert.Equal(t, 2, counter(t, env.counters, metrics.CounterCSVExports))
}
