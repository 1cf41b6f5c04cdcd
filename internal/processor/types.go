package processor

import (
	"errors"

	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/pubsub"
)

// Processor reacts to recorded matches and planned sessions, and computes the
// derived reports that leave the service (stats, share summary, standings).
type Processor struct {
	store    Store
	notifier Notifier
	metrics  metrics.Metrics
	counters metrics.CounterStore
	pubsub   pubsub.PubSubClient
}

// ErrInvalidEvent is returned for event payloads that can never be handled.
var ErrInvalidEvent = errors.New("invalid event")
