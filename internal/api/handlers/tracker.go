package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/season"
)

// TrackerHandler owns the admin writes against the tracker document. Every
// write drops the cached season reads.
type TrackerHandler struct {
	tracker *season.Tracker
	cache   *cache.Cache
}

func NewTrackerHandler(tracker *season.Tracker, cache *cache.Cache) *TrackerHandler {
	return &TrackerHandler{tracker: tracker, cache: cache}
}

func (h *TrackerHandler) invalidate() {
	h.cache.Clear("seasons")
}

// AddSeason serves POST /admin/tracker/seasons.
func (h *TrackerHandler) AddSeason(w http.ResponseWriter, r *http.Request) {
	var s domain.HistoricalSeason
	if !decodeBody(w, r, &s) {
		return
	}
	if s.ID == "" || s.Name == "" {
		respondError(w, http.StatusBadRequest, "season: id is required, name is required")
		return
	}

	if err := h.tracker.AddSeasonToHistory(s); err != nil {
		handleError(w, "tracker.AddSeason", err)
		return
	}

	h.invalidate()
	respondJSON(w, http.StatusOK, s, "Season saved to history")
}

// SetCurrent serves PUT /admin/tracker/current/{id}.
func (h *TrackerHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.tracker.SetCurrentSeason(id); err != nil {
		handleError(w, "tracker.SetCurrent", err)
		return
	}

	h.invalidate()
	respondJSON(w, http.StatusOK, map[string]string{"currentSeason": id}, "Current season updated")
}

// UpdateWeekly serves PUT /admin/tracker/rotations/weekly. Omitted sections
// keep their stored value.
func (h *TrackerHandler) UpdateWeekly(w http.ResponseWriter, r *http.Request) {
	var patch domain.WeeklyRotationPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.tracker.UpdateWeeklyRotations(patch); err != nil {
		handleError(w, "tracker.UpdateWeekly", err)
		return
	}

	h.invalidate()
	respondJSON(w, http.StatusOK, nil, "Weekly rotations updated")
}

// UpdateDaily serves PUT /admin/tracker/rotations/daily.
func (h *TrackerHandler) UpdateDaily(w http.ResponseWriter, r *http.Request) {
	var patch domain.DailyRotationsPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.tracker.UpdateDailyRotations(patch); err != nil {
		handleError(w, "tracker.UpdateDaily", err)
		return
	}

	h.invalidate()
	respondJSON(w, http.StatusOK, nil, "Daily rotations updated")
}

// UpdateUpcoming serves PUT /admin/tracker/upcoming. Zero-valued fields keep
// their stored value.
func (h *TrackerHandler) UpdateUpcoming(w http.ResponseWriter, r *http.Request) {
	var patch domain.UpcomingSeason
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.tracker.UpdateUpcomingSeason(patch); err != nil {
		handleError(w, "tracker.UpdateUpcoming", err)
		return
	}

	h.invalidate()
	respondJSON(w, http.StatusOK, nil, "Upcoming season updated")
}

// AddEvent serves POST /admin/tracker/events?current=true|false.
func (h *TrackerHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var event domain.SeasonalEvent
	if !decodeBody(w, r, &event) {
		return
	}
	if event.Name == "" {
		respondError(w, http.StatusBadRequest, "event: name is required")
		return
	}

	isCurrent, _ := strconv.ParseBool(r.URL.Query().Get("current"))
	if err := h.tracker.AddSeasonalEvent(event, isCurrent); err != nil {
		handleError(w, "tracker.AddEvent", err)
		return
	}

	h.invalidate()
	respondJSON(w, http.StatusOK, event, "Seasonal event saved")
}
