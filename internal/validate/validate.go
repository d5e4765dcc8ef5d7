// Package validate rejects malformed game-data payloads before they reach
// storage. Every validator collects all violations in a single pass and
// reports them together, so a client sees the full list at once.
package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/drbuilds/builds-backend/internal/domain"
)

// ValidationError aggregates every violated constraint found for one entity.
type ValidationError struct {
	Entity   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return e.Entity + ": " + strings.Join(e.Problems, ", ")
}

func newError(entity string, problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Problems: problems}
}

var (
	validAmmoTypes = []domain.AmmoType{domain.AmmoPrimary, domain.AmmoSpecial, domain.AmmoHeavy}

	validWeaponTypes = []string{
		"Hand Cannon", "Auto Rifle", "Scout Rifle", "Pulse Rifle", "Submachine Gun",
		"Sidearm", "Bow", "Sniper Rifle", "Shotgun", "Fusion Rifle", "Linear Fusion Rifle",
		"Trace Rifle", "Rocket Launcher", "Grenade Launcher", "Machine Gun", "Sword", "Glaive",
	}

	validRarities = []domain.Rarity{
		domain.RarityCommon, domain.RarityUncommon, domain.RarityRare,
		domain.RarityLegendary, domain.RarityExotic,
	}

	validElements = []domain.Element{
		domain.ElementKinetic, domain.ElementArc, domain.ElementSolar,
		domain.ElementVoid, domain.ElementStasis, domain.ElementStrand,
	}

	// Mods carry an elemental affinity but never Kinetic.
	validModElements = []domain.Element{
		domain.ElementArc, domain.ElementSolar, domain.ElementVoid,
		domain.ElementStasis, domain.ElementStrand,
	}

	validModTypes = []domain.ModType{domain.ModTypeWeapon, domain.ModTypeArmor, domain.ModTypeGhost}

	validModCategories = []domain.ModCategory{
		domain.ModCategoryCombat, domain.ModCategoryUtility, domain.ModCategorySeasonal,
		domain.ModCategoryRaid, domain.ModCategoryGeneral, domain.ModCategoryChargedLight,
		domain.ModCategoryElementalWell, domain.ModCategoryWarmindCell,
	}

	validTiers = []domain.MetaTier{domain.TierS, domain.TierA, domain.TierB, domain.TierC, domain.TierD}

	validArtifactModTypes = []domain.ArtifactModType{
		domain.ArtifactModAntiChampion, domain.ArtifactModWeapon,
		domain.ArtifactModArmor, domain.ArtifactModGeneral,
	}
)

func oneOf[T ~string](value T, valid []T) bool {
	for _, v := range valid {
		if v == value {
			return true
		}
	}
	return false
}

func joinValues[T ~string](valid []T) string {
	parts := make([]string, len(valid))
	for i, v := range valid {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// isValidDate accepts only strings that parse to a real instant and
// textually contain a time designator. A bare date like "2024-01-01" is
// deliberately rejected.
func isValidDate(s string) bool {
	if !strings.Contains(s, "T") {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Season validates the standalone season record.
func Season(s *domain.Season) error {
	var problems []string

	if s.ID == "" {
		problems = append(problems, "id is required")
	}
	if s.Number < 1 {
		problems = append(problems, "number must be a positive number")
	}
	if s.Name == "" {
		problems = append(problems, "name is required")
	}
	if s.StartDate == "" || !isValidDate(s.StartDate) {
		problems = append(problems, "startDate is required and must be a valid ISO date string")
	}
	if s.EndDate != "" && !isValidDate(s.EndDate) {
		problems = append(problems, "endDate must be a valid ISO date string")
	}

	return newError("season", problems)
}

// Weapon validates a weapon record, including its nested meta block.
// Out-of-range stats are not an error here; see WeaponStatWarnings.
func Weapon(w *domain.Weapon) error {
	var problems []string

	if w.ID == "" {
		problems = append(problems, "id is required")
	}
	if w.Name == "" {
		problems = append(problems, "name is required")
	}
	if !oneOf(w.Type, validAmmoTypes) {
		problems = append(problems, "type must be one of: "+joinValues(validAmmoTypes))
	}
	if !oneOf(w.WeaponType, validWeaponTypes) {
		problems = append(problems, "weaponType must be one of: "+strings.Join(validWeaponTypes, ", "))
	}
	if !oneOf(w.Rarity, validRarities) {
		problems = append(problems, "rarity must be one of: "+joinValues(validRarities))
	}
	if !oneOf(w.Element, validElements) {
		problems = append(problems, "element must be one of: "+joinValues(validElements))
	}
	if w.Description == "" {
		problems = append(problems, "description is required")
	}
	if w.Season == "" {
		problems = append(problems, "season is required")
	}
	if w.Source == "" {
		problems = append(problems, "source is required")
	}
	if w.Stats == nil {
		problems = append(problems, "stats is required")
	}
	if !oneOf(w.Meta.Tier, validTiers) {
		problems = append(problems, "meta.tier must be one of: "+joinValues(validTiers))
	}
	if w.Meta.PVERating < 0 || w.Meta.PVERating > 10 {
		problems = append(problems, "meta.pveRating must be a number between 0 and 10")
	}
	if w.Meta.PVPRating < 0 || w.Meta.PVPRating > 10 {
		problems = append(problems, "meta.pvpRating must be a number between 0 and 10")
	}
	if w.Meta.Popularity < 0 || w.Meta.Popularity > 100 {
		problems = append(problems, "meta.popularity must be a number between 0 and 100")
	}

	return newError("weapon", problems)
}

// WeaponStatWarnings reports stats outside the conventional 0-100 range.
// These are warnings only; the weapon is still accepted.
func WeaponStatWarnings(w *domain.Weapon) []string {
	names := make([]string, 0, len(w.Stats))
	for name := range w.Stats {
		names = append(names, name)
	}
	sort.Strings(names)

	var warnings []string
	for _, name := range names {
		if v := w.Stats[name]; v < 0 || v > 100 {
			warnings = append(warnings, fmt.Sprintf("stats.%s is outside the 0-100 range (%g)", name, v))
		}
	}
	return warnings
}

// Mod validates an armor/weapon/ghost mod record.
func Mod(m *domain.Mod) error {
	var problems []string

	if m.ID == "" {
		problems = append(problems, "id is required")
	}
	if m.Name == "" {
		problems = append(problems, "name is required")
	}
	if !oneOf(m.Type, validModTypes) {
		problems = append(problems, "type must be one of: "+joinValues(validModTypes))
	}
	if !oneOf(m.Category, validModCategories) {
		problems = append(problems, "category must be one of: "+joinValues(validModCategories))
	}
	if m.Element != "" && !oneOf(m.Element, validModElements) {
		problems = append(problems, "element must be one of: "+joinValues(validModElements))
	}
	if m.Description == "" {
		problems = append(problems, "description is required")
	}
	if m.Effect == "" {
		problems = append(problems, "effect is required")
	}
	if m.EnergyCost < 0 || m.EnergyCost > 10 {
		problems = append(problems, "energyCost must be a number between 0 and 10")
	}
	if m.Season == "" {
		problems = append(problems, "season is required")
	}
	if m.Source == "" {
		problems = append(problems, "source is required")
	}

	return newError("mod", problems)
}

// Artifact validates a seasonal artifact and recursively validates its mod
// grid. Nested violations are prefixed with their position, e.g.
// "mods[2] - column must be a positive number".
func Artifact(a *domain.Artifact) error {
	var problems []string

	if a.ID == "" {
		problems = append(problems, "id is required")
	}
	if a.Season == "" {
		problems = append(problems, "season is required")
	}
	if a.Name == "" {
		problems = append(problems, "name is required")
	}
	if a.Description == "" {
		problems = append(problems, "description is required")
	}
	if a.Mods == nil {
		problems = append(problems, "mods must be an array")
	} else {
		for i := range a.Mods {
			if err := ArtifactMod(&a.Mods[i]); err != nil {
				var verr *ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems {
						problems = append(problems, fmt.Sprintf("mods[%d] - %s", i, p))
					}
				}
			}
		}
	}

	return newError("artifact", problems)
}

// ArtifactMod validates one node of the artifact grid.
func ArtifactMod(m *domain.ArtifactMod) error {
	var problems []string

	if m.ID == "" {
		problems = append(problems, "id is required")
	}
	if m.Name == "" {
		problems = append(problems, "name is required")
	}
	if m.Column < 1 {
		problems = append(problems, "column must be a positive number")
	}
	if m.Row < 1 {
		problems = append(problems, "row must be a positive number")
	}
	if !oneOf(m.Type, validArtifactModTypes) {
		problems = append(problems, "type must be one of: "+joinValues(validArtifactModTypes))
	}
	if m.Description == "" {
		problems = append(problems, "description is required")
	}
	if m.Effect == "" {
		problems = append(problems, "effect is required")
	}
	if m.UnlockCost < 0 {
		problems = append(problems, "unlockCost must be a non-negative number")
	}

	return newError("artifactMod", problems)
}
