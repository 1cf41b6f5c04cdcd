package processor

import (
	"github.com/mauv0809/tennis-ledger/internal/notifier"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// Store defines the read operations required by the processor.
type Store interface {
	Players() []tennis.Player
	Matches() []tennis.Match
}

// Notifier defines the notification operations required by the processor.
// This is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
