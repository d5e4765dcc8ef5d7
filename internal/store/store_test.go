package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drbuilds/builds-backend/internal/domain"
)

func testWeapon(id, name string) domain.Weapon {
	return domain.Weapon{
		ID:          id,
		Name:        name,
		Type:        domain.AmmoPrimary,
		WeaponType:  "Hand Cannon",
		Rarity:      domain.RarityLegendary,
		Element:     domain.ElementKinetic,
		Description: "test weapon",
		Season:      "season-1",
		Source:      "test",
		Stats:       map[string]float64{"range": 50},
		Active:      true,
		Meta:        domain.WeaponMeta{Tier: domain.TierB, PVERating: 5, PVPRating: 5, Popularity: 50},
	}
}

func TestLoadWeapons_MissingFile(t *testing.T) {
	s := New(t.TempDir())

	weapons := s.LoadWeapons()
	assert.Empty(t, weapons)
}

func TestLoadWeapons_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "game"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game", "weapons.json"), []byte("{not json"), 0o644))

	s := New(dir)

	// Unparsable collections fail soft to empty, same as missing ones.
	assert.Empty(t, s.LoadWeapons())
}

func TestSaveAndLoadWeapons(t *testing.T) {
	s := New(t.TempDir())

	want := []domain.Weapon{testWeapon("a", "A"), testWeapon("b", "B")}
	require.NoError(t, s.SaveWeapons(want))

	assert.Equal(t, want, s.LoadWeapons())
}

func TestAddWeapon_Upsert(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SaveWeapons([]domain.Weapon{testWeapon("a", "A"), testWeapon("b", "B")}))

	// Existing id: replaced in place, length unchanged.
	updated := testWeapon("a", "A Prime")
	require.NoError(t, s.AddWeapon(updated))

	weapons := s.LoadWeapons()
	require.Len(t, weapons, 2)
	assert.Equal(t, "A Prime", weapons[0].Name)
	assert.Equal(t, "b", weapons[1].ID)

	// New id: appended.
	require.NoError(t, s.AddWeapon(testWeapon("c", "C")))
	weapons = s.LoadWeapons()
	require.Len(t, weapons, 3)
	assert.Equal(t, "c", weapons[2].ID)
}

func TestCurrentSeason(t *testing.T) {
	s := New(t.TempDir())

	// Missing pointer file is nil, not an error.
	assert.Nil(t, s.CurrentSeason())

	season := &domain.Season{
		ID: "season-of-the-wish", Number: 23, Name: "Season of the Wish",
		StartDate: "2023-11-28T17:00:00Z", Active: true,
	}
	require.NoError(t, s.SetCurrentSeason(season))

	got := s.CurrentSeason()
	require.NotNil(t, got)
	assert.Equal(t, season, got)
}

func TestGameData_CacheInvalidatedOnWrite(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SaveWeapons([]domain.Weapon{testWeapon("a", "A")}))

	first := s.GameData()
	require.Len(t, first.Weapons, 1)

	// Cached aggregate is returned until the next write.
	assert.Same(t, first, s.GameData())

	require.NoError(t, s.AddWeapon(testWeapon("b", "B")))
	second := s.GameData()
	assert.NotSame(t, first, second)
	assert.Len(t, second.Weapons, 2)
}

func TestStats(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SaveWeapons([]domain.Weapon{testWeapon("a", "A"), testWeapon("b", "B")}))
	require.NoError(t, s.SaveMods([]domain.Mod{{ID: "m1"}}))

	stats := s.Stats()
	assert.Equal(t, 2, stats.Weapons)
	assert.Equal(t, 1, stats.Mods)
	assert.Zero(t, stats.Artifacts)
	assert.NotEmpty(t, stats.LastUpdated)
}

func TestFilters(t *testing.T) {
	s := New(t.TempDir())

	inactive := testWeapon("old", "Old")
	inactive.Active = false

	special := testWeapon("special", "Special")
	special.Type = domain.AmmoSpecial

	otherSeason := testWeapon("next", "Next")
	otherSeason.Season = "season-2"

	require.NoError(t, s.SaveWeapons([]domain.Weapon{testWeapon("a", "A"), inactive, special, otherSeason}))

	assert.Len(t, s.ActiveWeapons(), 3)

	byType := s.WeaponsByType(domain.AmmoSpecial)
	require.Len(t, byType, 1)
	assert.Equal(t, "special", byType[0].ID)

	bySeason := s.WeaponsBySeason("season-2")
	require.Len(t, bySeason, 1)
	assert.Equal(t, "next", bySeason[0].ID)
}

func TestSearch(t *testing.T) {
	s := New(t.TempDir())

	sword := testWeapon("falling-guillotine", "Falling Guillotine")
	sword.Description = "A void sword with a heavy spin attack."
	require.NoError(t, s.SaveWeapons([]domain.Weapon{sword, testWeapon("fatebringer", "Fatebringer")}))
	require.NoError(t, s.SaveMods([]domain.Mod{{ID: "sword-scavenger", Name: "Sword Scavenger", Description: "More sword ammo."}}))

	results := s.Search("SWORD")
	require.Len(t, results.Weapons, 1)
	assert.Equal(t, "falling-guillotine", results.Weapons[0].ID)
	require.Len(t, results.Mods, 1)
	assert.Empty(t, results.Armor)
}
