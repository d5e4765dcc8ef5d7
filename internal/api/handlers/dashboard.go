package handlers

import (
	"net/http"

	"github.com/drbuilds/builds-backend/internal/api/middleware"
	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/season"
	"github.com/drbuilds/builds-backend/internal/store"
)

// DashboardHandler answers 200 to everyone; the body depends on whether the
// request carried the admin key. Frontends use this to decide which admin
// widgets to render.
type DashboardHandler struct {
	store    *store.Store
	tracker  *season.Tracker
	adminKey string
}

func NewDashboardHandler(store *store.Store, tracker *season.Tracker, adminKey string) *DashboardHandler {
	return &DashboardHandler{store: store, tracker: tracker, adminKey: adminKey}
}

type dashboardResponse struct {
	Authenticated bool                     `json:"authenticated"`
	Stats         *domain.DataStats        `json:"stats,omitempty"`
	CurrentSeason *domain.HistoricalSeason `json:"currentSeason,omitempty"`
	SeasonStats   *domain.SeasonStats      `json:"seasonStats,omitempty"`
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !middleware.Authenticated(r, h.adminKey) {
		respondJSON(w, http.StatusOK, dashboardResponse{Authenticated: false}, "")
		return
	}

	resp := dashboardResponse{
		Authenticated: true,
		Stats:         h.store.Stats(),
	}

	// Tracker state is best effort here; a broken tracker file should not
	// blank the whole dashboard.
	if current, err := h.tracker.CurrentSeason(); err == nil {
		resp.CurrentSeason = current
	}
	if stats, err := h.tracker.Stats(); err == nil {
		resp.SeasonStats = stats
	}

	respondJSON(w, http.StatusOK, resp, "")
}
