package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeStoreError maps store errors to status codes. Anything that is not a
// caller mistake is logged and reported as msg.
func writeStoreError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, club.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, club.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error(msg, "error", err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// parseDate accepts a calendar day (2006-01-02) or an RFC3339 instant. A
// calendar day used as an upper bound covers the whole day.
func parseDate(value string, upper bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if day, err := time.Parse(tennis.DateLayout, value); err == nil {
		if upper {
			return filter.EndOfDay(day), nil
		}
		return day, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ParseMatchFilters reads dateFrom, dateTo, playerId, courtId and status from the query.
func ParseMatchFilters(r *http.Request) (filter.MatchFilters, error) {
	q := r.URL.Query()
	var f filter.MatchFilters
	var err error
	if f.DateFrom, err = parseDate(q.Get("dateFrom"), false); err != nil {
		return f, fmt.Errorf("invalid dateFrom: %w", err)
	}
	if f.DateTo, err = parseDate(q.Get("dateTo"), true); err != nil {
		return f, fmt.Errorf("invalid dateTo: %w", err)
	}
	f.PlayerID = q.Get("playerId")
	f.CourtID = q.Get("courtId")
	f.Status = tennis.MatchStatus(q.Get("status"))
	return f, nil
}

// ParseScheduleFilters reads dateFrom, dateTo, playerId and status from the query.
func ParseScheduleFilters(r *http.Request) (filter.ScheduleFilters, error) {
	q := r.URL.Query()
	var f filter.ScheduleFilters
	var err error
	if f.DateFrom, err = parseDate(q.Get("dateFrom"), false); err != nil {
		return f, fmt.Errorf("invalid dateFrom: %w", err)
	}
	if f.DateTo, err = parseDate(q.Get("dateTo"), true); err != nil {
		return f, fmt.Errorf("invalid dateTo: %w", err)
	}
	f.PlayerID = q.Get("playerId")
	f.Status = tennis.ScheduleStatus(q.Get("status"))
	return f, nil
}

func matchFiltersOrError(w http.ResponseWriter, r *http.Request) (filter.MatchFilters, bool) {
	f, err := ParseMatchFilters(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return f, false
	}
	return f, true
}
