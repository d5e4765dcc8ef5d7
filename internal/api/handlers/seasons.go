package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/season"
	"github.com/drbuilds/builds-backend/internal/store"
	"github.com/drbuilds/builds-backend/internal/validate"
)

// SeasonHandler serves both season stores: the lightweight current-season
// pointer file and the composite tracker document.
type SeasonHandler struct {
	store   *store.Store
	tracker *season.Tracker
	cache   *cache.Cache
	opts    Options
}

func NewSeasonHandler(store *store.Store, tracker *season.Tracker, cache *cache.Cache, opts Options) *SeasonHandler {
	return &SeasonHandler{store: store, tracker: tracker, cache: cache, opts: opts}
}

// CurrentSeasonFile serves GET /current-season from the pointer file. Data
// is null when the file is missing, that is not an error.
func (h *SeasonHandler) CurrentSeasonFile(w http.ResponseWriter, r *http.Request) {
	s, err := cache.GetOr(h.cache, "current-season", h.opts.CacheTTL, func() (*domain.Season, error) {
		return h.store.CurrentSeason(), nil
	})
	if err != nil {
		handleError(w, "seasons.CurrentSeasonFile", err)
		return
	}
	respondJSON(w, http.StatusOK, s, "")
}

// SetCurrentSeasonFile serves POST /admin/season.
func (h *SeasonHandler) SetCurrentSeasonFile(w http.ResponseWriter, r *http.Request) {
	var s domain.Season
	if !decodeBody(w, r, &s) {
		return
	}

	clean, err := validate.ValidateAndSanitizeSeason(&s)
	if err != nil {
		handleError(w, "seasons.SetCurrentSeasonFile", err)
		return
	}

	if err := h.store.SetCurrentSeason(clean); err != nil {
		handleError(w, "seasons.SetCurrentSeasonFile", err)
		return
	}

	h.cache.Clear("current-season")
	respondJSON(w, http.StatusOK, clean, "Current season saved")
}

// Current serves GET /seasons/current from the tracker.
func (h *SeasonHandler) Current(w http.ResponseWriter, r *http.Request) {
	s, err := cache.GetOr(h.cache, "seasons-current", seasonTTL, h.tracker.CurrentSeason)
	if err != nil {
		handleError(w, "seasons.Current", err)
		return
	}
	respondJSON(w, http.StatusOK, s, "")
}

// Upcoming serves GET /seasons/upcoming.
func (h *SeasonHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	s, err := cache.GetOr(h.cache, "seasons-upcoming", seasonTTL, h.tracker.UpcomingSeason)
	if err != nil {
		handleError(w, "seasons.Upcoming", err)
		return
	}
	respondJSON(w, http.StatusOK, s, "")
}

// History serves GET /seasons/history?limit=&expansion=.
func (h *SeasonHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expansion := q.Get("expansion")
	limit, _ := strconv.Atoi(q.Get("limit"))

	key := fmt.Sprintf("seasons-history-%s-%d", expansion, limit)
	history, err := cache.GetOr(h.cache, key, seasonTTL, func() ([]domain.HistoricalSeason, error) {
		if expansion != "" {
			return h.tracker.SeasonsByExpansion(expansion)
		}
		doc, err := h.tracker.Load()
		if err != nil {
			return nil, err
		}
		return doc.SeasonHistory, nil
	})
	if err != nil {
		handleError(w, "seasons.History", err)
		return
	}

	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	respondJSON(w, http.StatusOK, history, "")
}

// ByNumber serves GET /seasons/number/{number}.
func (h *SeasonHandler) ByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Season number must be an integer")
		return
	}

	s, err := h.tracker.SeasonByNumber(number)
	if err != nil {
		handleError(w, "seasons.ByNumber", err)
		return
	}
	respondJSON(w, http.StatusOK, s, "")
}

// Stats serves GET /seasons/stats.
func (h *SeasonHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := cache.GetOr(h.cache, "seasons-stats", statsTTL, h.tracker.Stats)
	if err != nil {
		handleError(w, "seasons.Stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats, "")
}

type rotationsResponse struct {
	Weekly         *domain.WeeklyRotation `json:"weekly,omitempty"`
	Daily          *domain.DailyRotations `json:"daily,omitempty"`
	WeeklyOutdated *bool                  `json:"weeklyOutdated,omitempty"`
	DailyOutdated  *bool                  `json:"dailyOutdated,omitempty"`
}

// Rotations serves GET /seasons/rotations?type=daily|weekly. No type returns
// both sections. Each section carries a staleness flag derived from its
// stored reset date.
func (h *SeasonHandler) Rotations(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	if kind != "" && kind != string(season.RotationDaily) && kind != string(season.RotationWeekly) {
		respondError(w, http.StatusBadRequest, "Rotation type must be daily or weekly")
		return
	}

	key := "seasons-rotations-" + kind
	resp, err := cache.GetOr(h.cache, key, rotationsTTL, func() (*rotationsResponse, error) {
		doc, err := h.tracker.Load()
		if err != nil {
			return nil, err
		}
		out := &rotationsResponse{}
		if kind != string(season.RotationDaily) {
			out.Weekly = &doc.WeeklyRotations
			if stale, err := h.tracker.IsRotationOutdated(season.RotationWeekly); err == nil {
				out.WeeklyOutdated = &stale
			}
		}
		if kind != string(season.RotationWeekly) {
			out.Daily = &doc.DailyRotations
			if stale, err := h.tracker.IsRotationOutdated(season.RotationDaily); err == nil {
				out.DailyOutdated = &stale
			}
		}
		return out, nil
	})
	if err != nil {
		handleError(w, "seasons.Rotations", err)
		return
	}
	respondJSON(w, http.StatusOK, resp, "")
}

// Events serves GET /seasons/events.
func (h *SeasonHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := cache.GetOr(h.cache, "seasons-events", eventsTTL, func() (*domain.SeasonalEvents, error) {
		doc, err := h.tracker.Load()
		if err != nil {
			return nil, err
		}
		return &doc.SeasonalEvents, nil
	})
	if err != nil {
		handleError(w, "seasons.Events", err)
		return
	}
	respondJSON(w, http.StatusOK, events, "")
}
