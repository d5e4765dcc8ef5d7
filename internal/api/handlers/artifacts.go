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

type ArtifactHandler struct {
	store *store.Store
	cache *cache.Cache
	opts  Options
}

func NewArtifactHandler(store *store.Store, cache *cache.Cache, opts Options) *ArtifactHandler {
	return &ArtifactHandler{store: store, cache: cache, opts: opts}
}

// List serves GET /artifacts with season/active filters.
func (h *ArtifactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	season := q.Get("season")
	active := q.Get("active")

	key := fmt.Sprintf("artifacts-%s-%s", season, active)
	artifacts, err := cache.GetOr(h.cache, key, h.opts.CacheTTL, func() ([]domain.Artifact, error) {
		return filterArtifacts(h.store.LoadArtifacts(), season, active), nil
	})
	if err != nil {
		handleError(w, "artifacts.List", err)
		return
	}

	respondJSON(w, http.StatusOK, artifacts, "")
}

func filterArtifacts(artifacts []domain.Artifact, season, active string) []domain.Artifact {
	out := make([]domain.Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if season != "" && a.Season != season {
			continue
		}
		if active != "" && a.Active != (active == "true") {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Upsert serves POST /admin/artifacts. Nested mods are validated with their
// position in the error path.
func (h *ArtifactHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var artifact domain.Artifact
	if !decodeBody(w, r, &artifact) {
		return
	}

	clean, err := validate.ValidateAndSanitizeArtifact(&artifact)
	if err != nil {
		handleError(w, "artifacts.Upsert", err)
		return
	}

	if err := h.store.AddArtifact(*clean); err != nil {
		handleError(w, "artifacts.Upsert", err)
		return
	}

	h.cache.Clear("artifacts")
	respondJSON(w, http.StatusOK, clean, "Artifact saved")
}

// Replace serves PUT /admin/artifacts.
func (h *ArtifactHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var artifacts []domain.Artifact
	if !decodeBody(w, r, &artifacts) {
		return
	}

	clean := make([]domain.Artifact, 0, len(artifacts))
	var problems []string
	for i := range artifacts {
		c, err := validate.ValidateAndSanitizeArtifact(&artifacts[i])
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

	if err := h.store.SaveArtifacts(clean); err != nil {
		handleError(w, "artifacts.Replace", err)
		return
	}

	h.cache.Clear("artifacts")
	respondJSON(w, http.StatusOK, clean, fmt.Sprintf("Replaced %d artifacts", len(clean)))
}
