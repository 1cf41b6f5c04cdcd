package notifier

import (
	"sync"

	"github.com/mauv0809/tennis-ledger/internal/stats"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendResultNotificationFunc func(match tennis.Match, dryRun bool) error
	SendShareSummaryFunc       func(summary string, dryRun bool) error

	// Call records
	SendScheduleNotificationCalls []tennis.Schedule
	SendResultNotificationCalls   []tennis.Match
	SendShareSummaryCalls         []string
	SendStandingsCalls            [][]stats.PlayerStanding
	DryRuns                       []bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScheduleNotificationCalls = nil
	m.SendResultNotificationCalls = nil
	m.SendShareSummaryCalls = nil
	m.SendStandingsCalls = nil
	m.DryRuns = nil
}

func (m *Mock) SendScheduleNotification(schedule tennis.Schedule, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScheduleNotificationCalls = append(m.SendScheduleNotificationCalls, schedule)
	m.DryRuns = append(m.DryRuns, dryRun)
	return nil
}

func (m *Mock) SendResultNotification(match tennis.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, match)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendShareSummary(summary string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendShareSummaryCalls = append(m.SendShareSummaryCalls, summary)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendShareSummaryFunc != nil {
		return m.SendShareSummaryFunc(summary, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(standings []stats.PlayerStanding, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, standings)
	m.DryRuns = append(m.DryRuns, dryRun)
	return nil
}
