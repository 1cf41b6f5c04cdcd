package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/processor"
)

func ListMatchesHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, filter.Matches(store.Matches(), f))
	}
}

func GetMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := store.GetMatch(r.PathValue("id"))
		if err != nil {
			writeStoreError(w, err, "Failed to get match")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

// RecordMatchHandler records a match from its outcome alone.
func RecordMatchHandler(store club.ClubStore, processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.DoublesResultInput
		if !decodeBody(w, r, &in) {
			return
		}
		match, err := store.RecordDoublesResult(in)
		if err != nil {
			writeStoreError(w, err, "Failed to record match")
			return
		}
		log.Info("Match recorded", "matchID", match.ID, "result", match.Result)
		processor.MatchRecorded(match, IsDryRunFromContext(r))
		writeJSON(w, http.StatusCreated, match)
	}
}

// RecordScoredMatchHandler records a match from its set scores.
func RecordScoredMatchHandler(store club.ClubStore, processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.ScoredMatchInput
		if !decodeBody(w, r, &in) {
			return
		}
		match, err := store.RecordScoredMatch(in)
		if err != nil {
			writeStoreError(w, err, "Failed to record match")
			return
		}
		log.Info("Scored match recorded", "matchID", match.ID, "sets", len(match.Sets), "result", match.Result)
		processor.MatchRecorded(match, IsDryRunFromContext(r))
		writeJSON(w, http.StatusCreated, match)
	}
}

func UpdateMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch club.MatchPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		match, err := store.UpdateMatch(r.PathValue("id"), patch)
		if err != nil {
			writeStoreError(w, err, "Failed to update match")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func DeleteMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteMatch(r.PathValue("id")); err != nil {
			writeStoreError(w, err, "Failed to delete match")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
