package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/club"
)

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func ClearStoreHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would clear entire store")
			fmt.Fprint(w, "Store not cleared (dry run).")
			return
		}
		log.Info("Received request to clear entire store")
		if err := store.Clear(); err != nil {
			writeStoreError(w, err, "Failed to clear store")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// backupVersion tags the layout of the backup document.
const backupVersion = "1.0.0"

type backup struct {
	club.Snapshot
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
}

// BackupHandler serves every collection as one JSON document.
func BackupHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tennis-data-backup-%s.json"`, now.Format("2006-01-02")))
		writeJSON(w, http.StatusOK, backup{Snapshot: store.Snapshot(), ExportedAt: now, Version: backupVersion})
	}
}
