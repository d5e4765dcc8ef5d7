package domain

type AmmoType string

const (
	AmmoPrimary AmmoType = "Primary"
	AmmoSpecial AmmoType = "Special"
	AmmoHeavy   AmmoType = "Heavy"
)

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityLegendary Rarity = "Legendary"
	RarityExotic    Rarity = "Exotic"
)

type Element string

const (
	ElementKinetic Element = "Kinetic"
	ElementArc     Element = "Arc"
	ElementSolar   Element = "Solar"
	ElementVoid    Element = "Void"
	ElementStasis  Element = "Stasis"
	ElementStrand  Element = "Strand"
)

type MetaTier string

const (
	TierS MetaTier = "S"
	TierA MetaTier = "A"
	TierB MetaTier = "B"
	TierC MetaTier = "C"
	TierD MetaTier = "D"
)

// WeaponMeta carries the community tier-list placement for a weapon.
// Ratings are 0-10, popularity is 0-100.
type WeaponMeta struct {
	Tier       MetaTier `json:"tier"`
	PVERating  float64  `json:"pveRating"`
	PVPRating  float64  `json:"pvpRating"`
	Popularity float64  `json:"popularity"`
}

type Weapon struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        AmmoType `json:"type"`       // ammo slot: Primary / Special / Heavy
	WeaponType  string   `json:"weaponType"` // archetype, e.g. "Hand Cannon"
	Rarity      Rarity   `json:"rarity"`
	Element     Element  `json:"element"`
	Description string   `json:"description"`
	Season      string   `json:"season"` // season id the weapon shipped with
	Source      string   `json:"source"`

	IntrinsicPerks []string      `json:"intrinsicPerks,omitempty"`
	AvailablePerks []string      `json:"availablePerks,omitempty"`
	GodRollPerks   *GodRollPerks `json:"godRollPerks,omitempty"`

	// Named numeric attributes (range, stability, rpm, ...). Conventionally
	// 0-100 but only warned about, never rejected.
	Stats map[string]float64 `json:"stats"`

	Active bool       `json:"active"`
	Meta   WeaponMeta `json:"meta"`
}

type GodRollPerks struct {
	PVE []string `json:"pve"`
	PVP []string `json:"pvp"`
}
