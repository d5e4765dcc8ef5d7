package handlers

import (
	"net/http"

	"github.com/drbuilds/builds-backend/internal/store"
)

// GameDataHandler serves the whole assembled aggregate in one response. The
// store memoizes the assembly and drops it on write, so no response cache
// sits in front of this one.
type GameDataHandler struct {
	store *store.Store
}

func NewGameDataHandler(store *store.Store) *GameDataHandler {
	return &GameDataHandler{store: store}
}

func (h *GameDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.GameData(), "")
}
