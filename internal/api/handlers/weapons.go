package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/store"
	"github.com/drbuilds/builds-backend/internal/validate"
)

type WeaponHandler struct {
	store *store.Store
	cache *cache.Cache
	opts  Options
}

func NewWeaponHandler(store *store.Store, cache *cache.Cache, opts Options) *WeaponHandler {
	return &WeaponHandler{store: store, cache: cache, opts: opts}
}

// List serves GET /weapons with exact-match filters. Every distinct filter
// combination gets its own cache entry.
func (h *WeaponHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ammoType := q.Get("type")
	season := q.Get("season")
	active := q.Get("active")

	key := fmt.Sprintf("weapons-%s-%s-%s", ammoType, season, active)
	weapons, err := cache.GetOr(h.cache, key, h.opts.CacheTTL, func() ([]domain.Weapon, error) {
		return filterWeapons(h.store.LoadWeapons(), ammoType, season, active), nil
	})
	if err != nil {
		handleError(w, "weapons.List", err)
		return
	}

	respondJSON(w, http.StatusOK, weapons, "")
}

func filterWeapons(weapons []domain.Weapon, ammoType, season, active string) []domain.Weapon {
	out := make([]domain.Weapon, 0, len(weapons))
	for _, wp := range weapons {
		if ammoType != "" && wp.Type != domain.AmmoType(ammoType) {
			continue
		}
		if season != "" && wp.Season != season {
			continue
		}
		if active != "" && wp.Active != (active == "true") {
			continue
		}
		out = append(out, wp)
	}
	return out
}

// Upsert serves POST /admin/weapons: validate, sanitize and insert-or-replace
// a single weapon. The response echoes the stored entity so callers see the
// generated id and escaped fields.
func (h *WeaponHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var weapon domain.Weapon
	if !decodeBody(w, r, &weapon) {
		return
	}

	clean, err := validate.ValidateAndSanitizeWeapon(&weapon)
	if err != nil {
		handleError(w, "weapons.Upsert", err)
		return
	}

	if err := h.store.AddWeapon(*clean); err != nil {
		handleError(w, "weapons.Upsert", err)
		return
	}

	h.cache.Clear("weapons")

	// Out-of-range stats are accepted but called out in the message.
	message := "Weapon saved"
	if warnings := validate.WeaponStatWarnings(clean); len(warnings) > 0 {
		message = "Weapon saved with warnings: " + strings.Join(warnings, ", ")
	}
	respondJSON(w, http.StatusOK, clean, message)
}

// Replace serves PUT /admin/weapons: validate every entry, then swap the
// whole collection. Nothing is written when any entry fails.
func (h *WeaponHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var weapons []domain.Weapon
	if !decodeBody(w, r, &weapons) {
		return
	}

	clean := make([]domain.Weapon, 0, len(weapons))
	var problems []string
	for i := range weapons {
		c, err := validate.ValidateAndSanitizeWeapon(&weapons[i])
		if err != nil {
			problems = append(problems, fmt.Sprintf("[%d] %v", i, err))
			continue
		}
		clean = append(clean, *c)
	}
	if len(problems) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(problems, "; "))
		return
	}

	if err := h.store.SaveWeapons(clean); err != nil {
		handleError(w, "weapons.Replace", err)
		return
	}

	h.cache.Clear("weapons")
	respondJSON(w, http.StatusOK, clean, fmt.Sprintf("Replaced %d weapons", len(clean)))
}
