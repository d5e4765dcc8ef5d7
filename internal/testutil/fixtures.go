package testutil

import (
	"github.com/drbuilds/builds-backend/internal/domain"
)

// WeaponBuilder creates valid weapon payloads with a builder pattern.
type WeaponBuilder struct {
	weapon domain.Weapon
}

// NewWeaponBuilder returns a builder preloaded with a weapon that passes
// validation as-is.
func NewWeaponBuilder() *WeaponBuilder {
	return &WeaponBuilder{weapon: domain.Weapon{
		ID:          "fatebringer",
		Name:        "Fatebringer",
		Type:        domain.AmmoPrimary,
		WeaponType:  "Hand Cannon",
		Rarity:      domain.RarityLegendary,
		Element:     domain.ElementKinetic,
		Description: "A legendary hand cannon from the Vault of Glass.",
		Season:      "season-of-the-wish",
		Source:      "Vault of Glass",
		Stats:       map[string]float64{"impact": 84, "range": 62},
		Active:      true,
		Meta: domain.WeaponMeta{
			Tier:       domain.TierS,
			PVERating:  9.5,
			PVPRating:  7.0,
			Popularity: 88,
		},
	}}
}

func (b *WeaponBuilder) WithID(id string) *WeaponBuilder {
	b.weapon.ID = id
	return b
}

func (b *WeaponBuilder) WithName(name string) *WeaponBuilder {
	b.weapon.Name = name
	return b
}

func (b *WeaponBuilder) WithType(t domain.AmmoType) *WeaponBuilder {
	b.weapon.Type = t
	return b
}

func (b *WeaponBuilder) WithSeason(season string) *WeaponBuilder {
	b.weapon.Season = season
	return b
}

func (b *WeaponBuilder) WithActive(active bool) *WeaponBuilder {
	b.weapon.Active = active
	return b
}

func (b *WeaponBuilder) WithTier(tier domain.MetaTier) *WeaponBuilder {
	b.weapon.Meta.Tier = tier
	return b
}

func (b *WeaponBuilder) Build() domain.Weapon {
	return b.weapon
}

// ModBuilder creates valid mod payloads.
type ModBuilder struct {
	mod domain.Mod
}

func NewModBuilder() *ModBuilder {
	return &ModBuilder{mod: domain.Mod{
		ID:          "font-of-might",
		Name:        "Font of Might",
		Type:        domain.ModTypeArmor,
		Category:    domain.ModCategoryElementalWell,
		Element:     domain.ElementSolar,
		Description: "Picking up an elemental well grants a damage bonus.",
		Effect:      "Weapon damage bonus for 10 seconds.",
		EnergyCost:  4,
		Season:      "season-of-the-wish",
		Source:      "War Table",
		Active:      true,
	}}
}

func (b *ModBuilder) WithID(id string) *ModBuilder {
	b.mod.ID = id
	return b
}

func (b *ModBuilder) WithName(name string) *ModBuilder {
	b.mod.Name = name
	return b
}

func (b *ModBuilder) WithCategory(c domain.ModCategory) *ModBuilder {
	b.mod.Category = c
	return b
}

func (b *ModBuilder) WithActive(active bool) *ModBuilder {
	b.mod.Active = active
	return b
}

func (b *ModBuilder) Build() domain.Mod {
	return b.mod
}

// ArtifactBuilder creates valid seasonal-artifact payloads.
type ArtifactBuilder struct {
	artifact domain.Artifact
}

func NewArtifactBuilder() *ArtifactBuilder {
	return &ArtifactBuilder{artifact: domain.Artifact{
		ID:          "wish-keepers-oath",
		Season:      "season-of-the-wish",
		Name:        "Wish-Keeper's Oath",
		Description: "The seasonal artifact for Season of the Wish.",
		Active:      true,
		Mods: []domain.ArtifactMod{{
			ID:          "anti-barrier-pulse",
			Name:        "Anti-Barrier Pulse Rifle",
			Column:      1,
			Row:         1,
			Type:        domain.ArtifactModAntiChampion,
			Description: "Pulse rifles pierce Barrier Champion shields.",
			Effect:      "Shield-piercing rounds.",
			UnlockCost:  1,
		}},
	}}
}

func (b *ArtifactBuilder) WithID(id string) *ArtifactBuilder {
	b.artifact.ID = id
	return b
}

func (b *ArtifactBuilder) WithSeason(season string) *ArtifactBuilder {
	b.artifact.Season = season
	return b
}

func (b *ArtifactBuilder) WithModColumn(i, column int) *ArtifactBuilder {
	b.artifact.Mods[i].Column = column
	return b
}

func (b *ArtifactBuilder) Build() domain.Artifact {
	return b.artifact
}

// SeasonBuilder creates valid current-season payloads.
type SeasonBuilder struct {
	season domain.Season
}

func NewSeasonBuilder() *SeasonBuilder {
	return &SeasonBuilder{season: domain.Season{
		ID:        "season-of-the-wish",
		Number:    23,
		Name:      "Season of the Wish",
		StartDate: "2023-11-28T17:00:00Z",
		EndDate:   "2024-06-04T17:00:00Z",
		Active:    true,
		Expansion: "Lightfall",
	}}
}

func (b *SeasonBuilder) WithID(id string) *SeasonBuilder {
	b.season.ID = id
	return b
}

func (b *SeasonBuilder) WithNumber(n int) *SeasonBuilder {
	b.season.Number = n
	return b
}

func (b *SeasonBuilder) Build() domain.Season {
	return b.season
}
