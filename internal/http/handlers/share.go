package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/filter"
	"github.com/mauv0809/tennis-ledger/internal/processor"
	"github.com/mauv0809/tennis-ledger/internal/view"
)

// ExportCSVHandler serves the filtered matches as a CSV attachment.
func ExportCSVHandler(store club.ClubStore, processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		matches := filter.Matches(store.Matches(), f)

		var buf bytes.Buffer
		if err := view.MatchesCSV(&buf, matches); err != nil {
			log.Error("Failed to render CSV", "error", err)
			http.Error(w, "Failed to render CSV", http.StatusInternalServerError)
			return
		}
		processor.ExportRecorded()

		filename := fmt.Sprintf("tennis-matches-%s.csv", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.Error("Failed to write response", "error", err)
		}
		log.Info("Exported matches", "count", len(matches))
	}
}

type shareResponse struct {
	Summary string `json:"summary"`
}

// ShareHandler posts the summary of the filtered matches to Slack.
func ShareHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := matchFiltersOrError(w, r)
		if !ok {
			return
		}
		summary, err := processor.Share(f, IsDryRunFromContext(r))
		if err != nil {
			log.Error("Failed to share summary", "error", err)
			http.Error(w, "Failed to share summary", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, shareResponse{Summary: summary})
	}
}
