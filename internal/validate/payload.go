package validate

import (
	"github.com/google/uuid"

	"github.com/drbuilds/builds-backend/internal/domain"
)

// defaultID fills a missing id from the entity's name. A name that slugs to
// nothing (e.g. all punctuation) falls back to a random UUID so the record
// is still addressable.
func defaultID(id, name string) string {
	if id != "" {
		return id
	}
	if slug := GenerateID(name); slug != "" {
		return slug
	}
	return uuid.NewString()
}

// ValidateAndSanitizeWeapon defaults a missing id from the name, validates,
// then escapes every free-text field. Returns the weapon ready to persist.
func ValidateAndSanitizeWeapon(w *domain.Weapon) (*domain.Weapon, error) {
	w.ID = defaultID(w.ID, w.Name)
	if err := Weapon(w); err != nil {
		return nil, err
	}

	w.Name = SanitizeString(w.Name)
	w.Description = SanitizeString(w.Description)
	w.Source = SanitizeString(w.Source)
	return w, nil
}

// ValidateAndSanitizeMod is the mod counterpart of ValidateAndSanitizeWeapon.
func ValidateAndSanitizeMod(m *domain.Mod) (*domain.Mod, error) {
	m.ID = defaultID(m.ID, m.Name)
	if err := Mod(m); err != nil {
		return nil, err
	}

	m.Name = SanitizeString(m.Name)
	m.Description = SanitizeString(m.Description)
	m.Effect = SanitizeString(m.Effect)
	m.Source = SanitizeString(m.Source)
	return m, nil
}

// ValidateAndSanitizeArtifact sanitizes the artifact and every mod in its
// grid; nested mods also get defaulted ids.
func ValidateAndSanitizeArtifact(a *domain.Artifact) (*domain.Artifact, error) {
	a.ID = defaultID(a.ID, a.Name)
	for i := range a.Mods {
		a.Mods[i].ID = defaultID(a.Mods[i].ID, a.Mods[i].Name)
	}
	if err := Artifact(a); err != nil {
		return nil, err
	}

	a.Name = SanitizeString(a.Name)
	a.Description = SanitizeString(a.Description)
	for i := range a.Mods {
		a.Mods[i].Name = SanitizeString(a.Mods[i].Name)
		a.Mods[i].Description = SanitizeString(a.Mods[i].Description)
		a.Mods[i].Effect = SanitizeString(a.Mods[i].Effect)
	}
	return a, nil
}

// ValidateAndSanitizeSeason defaults, validates and sanitizes the standalone
// season record.
func ValidateAndSanitizeSeason(s *domain.Season) (*domain.Season, error) {
	s.ID = defaultID(s.ID, s.Name)
	if err := Season(s); err != nil {
		return nil, err
	}

	s.Name = SanitizeString(s.Name)
	if s.Expansion != "" {
		s.Expansion = SanitizeString(s.Expansion)
	}
	return s, nil
}
