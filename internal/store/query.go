package store

import (
	"strings"
	"time"

	"github.com/drbuilds/builds-backend/internal/domain"
)

// GameData assembles the full aggregate, memoized until the next write.
// LastUpdated reflects assembly time, not the last write.
func (s *Store) GameData() *domain.GameData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameData != nil {
		return s.gameData
	}

	var seasons []domain.Season
	if current := s.CurrentSeason(); current != nil {
		seasons = []domain.Season{*current}
	} else {
		seasons = []domain.Season{}
	}

	s.gameData = &domain.GameData{
		Seasons:     seasons,
		Weapons:     readCollection[domain.Weapon](s, weaponsFile),
		Armor:       readCollection[domain.Armor](s, armorFile),
		Mods:        readCollection[domain.Mod](s, modsFile),
		Artifacts:   readCollection[domain.Artifact](s, artifactsFile),
		Subclasses:  readCollection[domain.Subclass](s, subclassesFile),
		Activities:  readCollection[domain.Activity](s, activitiesFile),
		Vendors:     readCollection[domain.Vendor](s, vendorsFile),
		Meta:        readCollection[domain.BuildMeta](s, metaFile),
		LastUpdated: s.now().UTC().Format(time.RFC3339),
		Version:     SchemaVersion,
	}
	return s.gameData
}

func (s *Store) ActiveWeapons() []domain.Weapon {
	var out []domain.Weapon
	for _, w := range s.LoadWeapons() {
		if w.Active {
			out = append(out, w)
		}
	}
	return out
}

// WeaponsByType returns active weapons in the given ammo slot.
func (s *Store) WeaponsByType(ammo domain.AmmoType) []domain.Weapon {
	var out []domain.Weapon
	for _, w := range s.LoadWeapons() {
		if w.Type == ammo && w.Active {
			out = append(out, w)
		}
	}
	return out
}

// WeaponsBySeason returns every weapon tied to the season id, active or not.
func (s *Store) WeaponsBySeason(seasonID string) []domain.Weapon {
	var out []domain.Weapon
	for _, w := range s.LoadWeapons() {
		if w.Season == seasonID {
			out = append(out, w)
		}
	}
	return out
}

// ModsByType returns active mods of the given slot type.
func (s *Store) ModsByType(modType domain.ModType) []domain.Mod {
	var out []domain.Mod
	for _, m := range s.LoadMods() {
		if m.Type == modType && m.Active {
			out = append(out, m)
		}
	}
	return out
}

// Search matches the query case-insensitively against names and
// descriptions across the searchable collections.
func (s *Store) Search(query string) *domain.SearchResults {
	q := strings.ToLower(query)
	results := &domain.SearchResults{}

	for _, w := range s.LoadWeapons() {
		if containsFold(w.Name, q) || containsFold(w.Description, q) {
			results.Weapons = append(results.Weapons, w)
		}
	}
	for _, a := range s.LoadArmor() {
		if containsFold(a.Name, q) || containsFold(a.Description, q) {
			results.Armor = append(results.Armor, a)
		}
	}
	for _, m := range s.LoadMods() {
		if containsFold(m.Name, q) || containsFold(m.Description, q) {
			results.Mods = append(results.Mods, m)
		}
	}
	for _, act := range s.LoadActivities() {
		if containsFold(act.Name, q) {
			results.Activities = append(results.Activities, act)
		}
	}
	return results
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

// Stats counts each editable collection. The timestamp is the computation
// time, not the time of the last actual write.
func (s *Store) Stats() *domain.DataStats {
	return &domain.DataStats{
		Weapons:     len(s.LoadWeapons()),
		Armor:       len(s.LoadArmor()),
		Mods:        len(s.LoadMods()),
		Artifacts:   len(s.LoadArtifacts()),
		Activities:  len(s.LoadActivities()),
		LastUpdated: s.now().UTC().Format(time.RFC3339),
	}
}
