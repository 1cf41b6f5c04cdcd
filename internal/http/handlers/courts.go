package handlers

import (
	"net/http"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// ListCourtsHandler lists courts; ?active=true keeps only bookable ones.
func ListCourtsHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var courts []tennis.Court
		if r.URL.Query().Get("active") == "true" {
			courts = store.ActiveCourts()
		} else {
			courts = store.Courts()
		}
		writeJSON(w, http.StatusOK, courts)
	}
}

func CreateCourtHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.CourtInput
		if !decodeBody(w, r, &in) {
			return
		}
		court, err := store.AddCourt(in)
		if err != nil {
			writeStoreError(w, err, "Failed to add court")
			return
		}
		writeJSON(w, http.StatusCreated, court)
	}
}

func UpdateCourtHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch club.CourtPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		court, err := store.UpdateCourt(r.PathValue("id"), patch)
		if err != nil {
			writeStoreError(w, err, "Failed to update court")
			return
		}
		writeJSON(w, http.StatusOK, court)
	}
}

func DeleteCourtHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteCourt(r.PathValue("id")); err != nil {
			writeStoreError(w, err, "Failed to delete court")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
