package domain

type GuardianClass string

const (
	ClassHunter    GuardianClass = "Hunter"
	ClassTitan     GuardianClass = "Titan"
	ClassWarlock   GuardianClass = "Warlock"
	ClassUniversal GuardianClass = "Universal"
)

type Armor struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Type          string             `json:"type"` // Helmet, Gauntlets, Chest Armor, Leg Armor, Class Item
	Class         GuardianClass      `json:"class"`
	Rarity        Rarity             `json:"rarity"`
	Description   string             `json:"description"`
	Season        string             `json:"season"`
	Source        string             `json:"source"`
	IntrinsicPerk string             `json:"intrinsicPerk,omitempty"`
	ExoticPerk    string             `json:"exoticPerk,omitempty"`
	Stats         map[string]float64 `json:"stats,omitempty"`
	Active        bool               `json:"active"`
}

type Subclass struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Class   GuardianClass `json:"class"`
	Element Element       `json:"element"`
	Active  bool          `json:"active"`
}

type Activity struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`       // Raid, Dungeon, Nightfall, ...
	Difficulty    string   `json:"difficulty"` // Normal .. Grandmaster
	Rewards       []string `json:"rewards"`
	Season        string   `json:"season"`
	Active        bool     `json:"active"`
	Rotation      bool     `json:"rotation,omitempty"`
	RotationWeeks []int    `json:"rotationWeeks,omitempty"`
}

type VendorItem struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"` // Weapon, Armor, Mod, Material, Consumable
	ItemID    string       `json:"itemId"`
	Cost      []VendorCost `json:"cost"`
	Available bool         `json:"available"`
	ResetDate string       `json:"resetDate,omitempty"`
}

type VendorCost struct {
	Currency string `json:"currency"`
	Amount   int    `json:"amount"`
}

type Vendor struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Location  string       `json:"location"`
	ResetType string       `json:"resetType"` // Daily, Weekly, Never
	Inventory []VendorItem `json:"inventory"`
	Active    bool         `json:"active"`
}

// BuildMeta is a community meta snapshot for a class/subclass combination.
type BuildMeta struct {
	Season      string        `json:"season"`
	Class       GuardianClass `json:"class"`
	Subclass    string        `json:"subclass"`
	GameMode    string        `json:"gameMode"` // PvE, PvP, Both
	Tier        MetaTier      `json:"tier"`
	Popularity  float64       `json:"popularity"`
	WinRate     float64       `json:"winRate,omitempty"`
	Usage       float64       `json:"usage"`
	LastUpdated string        `json:"lastUpdated"`
}

// GameData is the in-memory aggregate of every collection. LastUpdated is
// the assembly time, not the last write time.
type GameData struct {
	Seasons     []Season    `json:"seasons"`
	Weapons     []Weapon    `json:"weapons"`
	Armor       []Armor     `json:"armor"`
	Mods        []Mod       `json:"mods"`
	Artifacts   []Artifact  `json:"artifacts"`
	Subclasses  []Subclass  `json:"subclasses"`
	Activities  []Activity  `json:"activities"`
	Vendors     []Vendor    `json:"vendors"`
	Meta        []BuildMeta `json:"meta"`
	LastUpdated string      `json:"lastUpdated"`
	Version     string      `json:"version"`
}

// DataStats is the element count of each editable collection. LastUpdated
// reflects computation time, not the last actual write.
type DataStats struct {
	Weapons     int    `json:"weapons"`
	Armor       int    `json:"armor"`
	Mods        int    `json:"mods"`
	Artifacts   int    `json:"artifacts"`
	Activities  int    `json:"activities"`
	LastUpdated string `json:"lastUpdated"`
}

// SearchResults groups name/description matches per collection.
type SearchResults struct {
	Weapons    []Weapon   `json:"weapons"`
	Armor      []Armor    `json:"armor"`
	Mods       []Mod      `json:"mods"`
	Activities []Activity `json:"activities"`
}
