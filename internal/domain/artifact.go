package domain

type ArtifactModType string

const (
	ArtifactModAntiChampion ArtifactModType = "Anti-Champion"
	ArtifactModWeapon       ArtifactModType = "Weapon"
	ArtifactModArmor        ArtifactModType = "Armor"
	ArtifactModGeneral      ArtifactModType = "General"
)

// ArtifactMod is one unlockable node in the seasonal artifact grid.
// Column and row are 1-based.
type ArtifactMod struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Column        int             `json:"column"`
	Row           int             `json:"row"`
	Type          ArtifactModType `json:"type"`
	Description   string          `json:"description"`
	Effect        string          `json:"effect"`
	UnlockCost    int             `json:"unlockCost"`
	Prerequisites []string        `json:"prerequisites,omitempty"` // artifact mod ids
}

type Artifact struct {
	ID          string        `json:"id"`
	Season      string        `json:"season"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Mods        []ArtifactMod `json:"mods"`
	Active      bool          `json:"active"`
}
