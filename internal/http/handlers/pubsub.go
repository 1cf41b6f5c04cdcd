package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-ledger/internal/processor"
)

// pushMessage is the envelope Pub/Sub push subscriptions deliver.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"` // base64-encoded message payload
	} `json:"message"`
}

// decodePush unwraps a push request into the raw MessagePack payload.
func decodePush(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return nil, false
	}
	log.Debug("Received push message", "body", string(bodyBytes))

	var msg pushMessage
	if err := json.Unmarshal(bodyBytes, &msg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	rawData, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return nil, false
	}
	return rawData, true
}

// MatchRecordedHandler is the push endpoint for the match-recorded topic.
func MatchRecordedHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, ok := decodePush(w, r)
		if !ok {
			return
		}
		err := proc.HandleMatchRecorded(rawData, IsDryRunFromContext(r))
		if errors.Is(err, processor.ErrInvalidEvent) {
			log.Warn("Dropping undecodable event", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error("Failed to handle match recorded event", "error", err)
			http.Error(w, "Failed to handle event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
