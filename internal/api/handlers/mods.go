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

type ModHandler struct {
	store *store.Store
	cache *cache.Cache
	opts  Options
}

func NewModHandler(store *store.Store, cache *cache.Cache, opts Options) *ModHandler {
	return &ModHandler{store: store, cache: cache, opts: opts}
}

// List serves GET /mods with type/category/active filters.
func (h *ModHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	modType := q.Get("type")
	category := q.Get("category")
	active := q.Get("active")

	key := fmt.Sprintf("mods-%s-%s-%s", modType, category, active)
	mods, err := cache.GetOr(h.cache, key, h.opts.CacheTTL, func() ([]domain.Mod, error) {
		return filterMods(h.store.LoadMods(), modType, category, active), nil
	})
	if err != nil {
		handleError(w, "mods.List", err)
		return
	}

	respondJSON(w, http.StatusOK, mods, "")
}

func filterMods(mods []domain.Mod, modType, category, active string) []domain.Mod {
	out := make([]domain.Mod, 0, len(mods))
	for _, m := range mods {
		if modType != "" && m.Type != domain.ModType(modType) {
			continue
		}
		if category != "" && m.Category != domain.ModCategory(category) {
			continue
		}
		if active != "" && m.Active != (active == "true") {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Upsert serves POST /admin/mods.
func (h *ModHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var mod domain.Mod
	if !decodeBody(w, r, &mod) {
		return
	}

	clean, err := validate.ValidateAndSanitizeMod(&mod)
	if err != nil {
		handleError(w, "mods.Upsert", err)
		return
	}

	if err := h.store.AddMod(*clean); err != nil {
		handleError(w, "mods.Upsert", err)
		return
	}

	h.cache.Clear("mods")
	respondJSON(w, http.StatusOK, clean, "Mod saved")
}

// Replace serves PUT /admin/mods.
func (h *ModHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var mods []domain.Mod
	if !decodeBody(w, r, &mods) {
		return
	}

	clean := make([]domain.Mod, 0, len(mods))
	var problems []string
	for i := range mods {
		c, err := validate.ValidateAndSanitizeMod(&mods[i])
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

	if err := h.store.SaveMods(clean); err != nil {
		handleError(w, "mods.Replace", err)
		return
	}

	h.cache.Clear("mods")
	respondJSON(w, http.StatusOK, clean, fmt.Sprintf("Replaced %d mods", len(clean)))
}
