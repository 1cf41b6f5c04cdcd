package filter

import (
	"time"

	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// MatchFilters selects matches. Every set field must match; zero fields are
// ignored, so the zero value selects everything.
type MatchFilters struct {
	DateFrom time.Time          `json:"date_from,omitempty"`
	DateTo   time.Time          `json:"date_to,omitempty"`
	PlayerID string             `json:"player_id,omitempty"`
	CourtID  string             `json:"court_id,omitempty"`
	Status   tennis.MatchStatus `json:"status,omitempty"`
}

// IsZero reports whether no criterion is set.
func (f MatchFilters) IsZero() bool {
	return f == MatchFilters{}
}

// ScheduleFilters selects schedules the same way MatchFilters selects matches.
type ScheduleFilters struct {
	DateFrom time.Time             `json:"date_from,omitempty"`
	DateTo   time.Time             `json:"date_to,omitempty"`
	PlayerID string                `json:"player_id,omitempty"`
	Status   tennis.ScheduleStatus `json:"status,omitempty"`
}

// IsZero reports whether no criterion is set.
func (f ScheduleFilters) IsZero() bool {
	return f == ScheduleFilters{}
}

// Matches returns the matches satisfying every criterion of f, in input order.
// Both date bounds are inclusive and compared exactly; a caller holding a
// calendar day for DateTo should pass EndOfDay of it.
func Matches(matches []tennis.Match, f MatchFilters) []tennis.Match {
	out := make([]tennis.Match, 0, len(matches))
	for _, m := range matches {
		if !f.DateFrom.IsZero() && m.Date.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && m.Date.After(f.DateTo) {
			continue
		}
		if f.CourtID != "" && m.CourtID != f.CourtID {
			continue
		}
		if f.PlayerID != "" && !m.HasPlayer(f.PlayerID) {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Schedules returns the schedules satisfying every criterion of f, in input order.
func Schedules(schedules []tennis.Schedule, f ScheduleFilters) []tennis.Schedule {
	out := make([]tennis.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if !f.DateFrom.IsZero() && s.Date.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && s.Date.After(f.DateTo) {
			continue
		}
		if f.PlayerID != "" && !s.HasPlayer(f.PlayerID) {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		out = append(out, s)
	}
	return out
}

// EndOfDay returns the last representable instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
