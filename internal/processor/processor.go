package processor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/pubsub"
	"github.com/mauv0809/tennis-ledger/internal/stats"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
	"github.com/mauv0809/tennis-ledger/internal/view"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, counters metrics.CounterStore, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		counters: counters,
		pubsub:   pubsub,
	}
}

// MatchRecorded counts the match and publishes the match-recorded event.
// Nothing is published on a dry run.
func (p *Processor) MatchRecorded(match tennis.Match, dryRun bool) {
	p.counters.Increment(metrics.CounterMatchesRecorded)
	if dryRun {
		log.Info("[Dry Run] Would publish event", "topic", pubsub.EventMatchRecorded, "matchID", match.ID)
		return
	}
	if err := p.pubsub.SendMessage(pubsub.EventMatchRecorded, match); err != nil {
		p.metrics.IncEventsFailed()
		log.Error("Failed to publish match recorded event", "error", err, "matchID", match.ID)
		return
	}
	p.metrics.IncEventsPublished()
}

// HandleMatchRecorded decodes a match-recorded payload and announces the result.
func (p *Processor) HandleMatchRecorded(data []byte, dryRun bool) error {
	var match tennis.Match
	if err := p.pubsub.ProcessMessage(data, &match); err != nil {
		return fmt.Errorf("%w: failed to decode match: %v", ErrInvalidEvent, err)
	}
	if match.ID == "" {
		return fmt.Errorf("%w: event carries no match", ErrInvalidEvent)
	}
	return p.NotifyResult(match, dryRun)
}

// NotifyResult sends the result notification for a match.
func (p *Processor) NotifyResult(match tennis.Match, dryRun bool) error {
	log.Info("Sending result notification", "matchID", match.ID)
	if err := p.notifier.SendResultNotification(match, dryRun); err != nil {
		return fmt.Errorf("failed to send result notification: %w", err)
	}
	return nil
}

// ScheduleCreated announces a newly planned session. Failures are only logged
// since the schedule is already stored.
func (p *Processor) ScheduleCreated(schedule tennis.Schedule, dryRun bool) {
	if err := p.notifier.SendScheduleNotification(schedule, dryRun); err != nil {
		log.Error("Failed to send schedule notification", "error", err, "scheduleID", schedule.ID)
	}
}

// Stats aggregates the matches selected by f.
func (p *Processor) Stats(f filter.MatchFilters) stats.MatchStats {
	matches := filter.Matches(p.store.Matches(), f)
	return p.compute(matches)
}

func (p *Processor) compute(matches []tennis.Match) stats.MatchStats {
	start := time.Now()
	s := stats.Compute(matches)
	p.metrics.IncStatsComputed()
	p.metrics.ObserveStatsDuration(time.Since(start).Seconds())
	log.Debug("Computed match stats", "matches", len(matches), "total", s.TotalMatches)
	return s
}

// Standings ranks every player over the matches selected by f.
func (p *Processor) Standings(f filter.MatchFilters) []stats.PlayerStanding {
	return stats.Standings(p.store.Players(), filter.Matches(p.store.Matches(), f))
}

// Share builds the plain-text summary for the matches selected by f and posts it.
// The summary is returned even when posting fails.
func (p *Processor) Share(f filter.MatchFilters, dryRun bool) (string, error) {
	matches := filter.Matches(p.store.Matches(), f)
	summary := view.ShareSummary(p.compute(matches), matches)
	if err := p.notifier.SendShareSummary(summary, dryRun); err != nil {
		return summary, fmt.Errorf("failed to share summary: %w", err)
	}
	if !dryRun {
		p.counters.Increment(metrics.CounterSummariesShared)
	}
	return summary, nil
}

// PostStandings posts the current standings.
func (p *Processor) PostStandings(f filter.MatchFilters, dryRun bool) ([]stats.PlayerStanding, error) {
	standings := p.Standings(f)
	if err := p.notifier.SendStandings(standings, dryRun); err != nil {
		return standings, fmt.Errorf("failed to post standings: %w", err)
	}
	return standings, nil
}

// ExportRecorded counts a CSV export.
func (p *Processor) ExportRecorded() {
	p.counters.Increment(metrics.CounterCSVExports)
}
