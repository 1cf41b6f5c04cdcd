package handlers

import (
	"net/http"

	"github.com/mauv0809/tennis-ledger/internal/club"
	"github.com/mauv0809/tennis-ledger/internal/tennis"
)

// ListPlayersHandler lists the roster, optionally narrowed by ?skill=.
func ListPlayersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var players []tennis.Player
		if skill := r.URL.Query().Get("skill"); skill != "" {
			players = store.PlayersBySkill(tennis.SkillLevel(skill))
		} else {
			players = store.Players()
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func GetPlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := store.GetPlayer(r.PathValue("id"))
		if err != nil {
			writeStoreError(w, err, "Failed to get player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func CreatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.PlayerInput
		if !decodeBody(w, r, &in) {
			return
		}
		player, err := store.AddPlayer(in)
		if err != nil {
			writeStoreError(w, err, "Failed to add player")
			return
		}
		writeJSON(w, http.StatusCreated, player)
	}
}

func UpdatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch club.PlayerPatch
		if !decodeBody(w, r, &patch) {
			return
		}
		player, err := store.UpdatePlayer(r.PathValue("id"), patch)
		if err != nil {
			writeStoreError(w, err, "Failed to update player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func DeletePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeletePlayer(r.PathValue("id")); err != nil {
			writeStoreError(w, err, "Failed to delete player")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
