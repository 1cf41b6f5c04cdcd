package notifier

import (
	"github.com/mauv0809/tennis-ledger/internal/stats"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// Notifier defines a high-level interface for sending notifications about club events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly planned sessions
	SendScheduleNotification(schedule tennis.Schedule, dryRun bool) error
	// For recorded matches
	SendResultNotification(match tennis.Match, dryRun bool) error
	// For sharing
	SendShareSummary(summary string, dryRun bool) error
	SendStandings(standings []stats.PlayerStanding, dryRun bool) error
}
