package handlers

import (
	"net/http"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/metrics"
	"github.com/mauv0809/tennis-ledger/internal/processor"
	"github.com/mauv0809/tennis-ledger/internal/stats"
)

// StatsHandler aggregates the matches selected by the query filters.
func StatsHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, processor.Stats(f))
	}
}

func StandingsHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, processor.Standings(f))
	}
}

// PostStandingsHandler sends the standings to Slack and echoes them back.
func PostStandingsHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		standings, err := processor.PostStandings(f, IsDryRunFromContext(r))
		if err != nil {
			writeStoreError(w, err, "Failed to post standings")
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func CourtUsageHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, stats.CourtUsageByCourt(store.Courts(), filter.Matches(store.Matches(), f)))
	}
}

func MonthlyHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, stats.MonthlyCounts(filter.Matches(store.Matches(), f)))
	}
}

// CountersHandler reports the persistent activity counters.
func CountersHandler(counters metrics.CounterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := counters.GetAll()
		if err != nil {
			writeStoreError(w, err, "Failed to get counters")
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}
