package domain

type ModType string

const (
	ModTypeWeapon ModType = "Weapon"
	ModTypeArmor  ModType = "Armor"
	ModTypeGhost  ModType = "Ghost"
)

type ModCategory string

const (
	ModCategoryCombat        ModCategory = "Combat"
	ModCategoryUtility       ModCategory = "Utility"
	ModCategorySeasonal      ModCategory = "Seasonal"
	ModCategoryRaid          ModCategory = "Raid"
	ModCategoryGeneral       ModCategory = "General"
	ModCategoryChargedLight  ModCategory = "Charged with Light"
	ModCategoryElementalWell ModCategory = "Elemental Well"
	ModCategoryWarmindCell   ModCategory = "Warmind Cell"
)

type Mod struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ModType     `json:"type"`
	Category    ModCategory `json:"category"`
	Element     Element     `json:"element,omitempty"` // optional, never Kinetic
	Description string      `json:"description"`
	Effect      string      `json:"effect"`
	EnergyCost  int         `json:"energyCost"` // 0-10
	Season      string      `json:"season"`
	Source      string      `json:"source"`
	Active      bool        `json:"active"`
	Deprecated  bool        `json:"deprecated,omitempty"`
}
