package handlers

import (
	"net/http"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/processor"
)

func ListSchedulesHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := ParseScheduleFilters(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, filter.Schedules(store.Schedules(), f))
	}
}

// CreateScheduleHandler stores a planned session and announces it.
func CreateScheduleHandler(store club.ClubStore, processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.ScheduleInput
		if !decodeBody(w, r, &in) {
			return
		}
		schedule, err := store.AddSchedule(in)
		if err != nil {
			writeStoreError(w, err, "Failed to add schedule")
			return
		}
		processor.ScheduleCreated(schedule, IsDryRunFromContext(r))
		writeJSON(w, http.StatusCreated, schedule)
	}
}

func UpdateScheduleHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch club.SchedulePatch
		if !decodeBody(w, r, &patch) {
			return
		}
		schedule, err := store.UpdateSchedule(r.PathValue("id"), patch)
		if err != nil {
			writeStoreError(w, err, "Failed to update schedule")
			return
		}
		writeJSON(w, http.StatusOK, schedule)
	}
}

func DeleteScheduleHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteSchedule(r.PathValue("id")); err != nil {
			writeStoreError(w, err, "Failed to delete schedule")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
