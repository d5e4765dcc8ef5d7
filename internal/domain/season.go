package domain

// Season is the small standalone record behind game/current-season.json.
// It is independent of the richer tracker document; the two stores are not
// reconciled (see DESIGN.md).
type Season struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // ISO-8601 with time component
	EndDate   string `json:"endDate,omitempty"`
	Active    bool   `json:"active"`
	Expansion string `json:"expansion,omitempty"`
}

type ActivityKind string

const (
	ActivitySeasonal ActivityKind = "Seasonal"
	ActivityRaid     ActivityKind = "Raid"
	ActivityDungeon  ActivityKind = "Dungeon"
	ActivityEvent    ActivityKind = "Event"
)

type SeasonalActivity struct {
	Name    string       `json:"name"`
	Type    ActivityKind `json:"type"`
	Rewards []string     `json:"rewards"`
}

// SeasonWeapons groups a season's weapon ids by acquisition source.
type SeasonWeapons struct {
	Seasonal []string `json:"seasonal"`
	Raid     []string `json:"raid,omitempty"`
	Dungeon  []string `json:"dungeon,omitempty"`
	Event    []string `json:"event,omitempty"`
}

type SeasonMods struct {
	Artifact string   `json:"artifact"` // artifact id
	Seasonal []string `json:"seasonal"`
	Raid     []string `json:"raid,omitempty"`
	Dungeon  []string `json:"dungeon,omitempty"`
}

// HistoricalSeason is a Season superset kept in the tracker's history list.
type HistoricalSeason struct {
	ID         string             `json:"id"`
	Number     int                `json:"number"`
	Name       string             `json:"name"`
	StartDate  string             `json:"startDate"`
	EndDate    string             `json:"endDate"`
	Active     bool               `json:"active"`
	Expansion  string             `json:"expansion"`
	Activities []SeasonalActivity `json:"activities"`
	Weapons    SeasonWeapons      `json:"weapons"`
	Mods       *SeasonMods        `json:"mods,omitempty"`
}

// UpcomingSeason is a partial forward-looking record; only the estimated
// start and number are reliable.
type UpcomingSeason struct {
	EstimatedStart string `json:"estimatedStart"`
	Number         int    `json:"number"`
	Expansion      string `json:"expansion"`
	Name           string `json:"name,omitempty"`
}

type EventKind string

const (
	EventAnnual  EventKind = "Annual"
	EventSpecial EventKind = "Special"
	EventHoliday EventKind = "Holiday"
)

type SeasonalEvent struct {
	Name           string    `json:"name"`
	Type           EventKind `json:"type"`
	EstimatedStart string    `json:"estimatedStart"`
	EstimatedEnd   string    `json:"estimatedEnd"`
}

type SeasonalEvents struct {
	Current  []SeasonalEvent `json:"current"`
	Upcoming []SeasonalEvent `json:"upcoming"`
}

type NightfallRotation struct {
	Current   string   `json:"current"`
	Modifiers []string `json:"modifiers"`
	ResetDate string   `json:"resetDate"`
}

type RaidRotation struct {
	Featured   string   `json:"featured"`
	Challenges []string `json:"challenges"`
	ResetDate  string   `json:"resetDate"`
}

type DungeonRotation struct {
	Featured  string   `json:"featured"`
	Modifiers []string `json:"modifiers"`
	ResetDate string   `json:"resetDate"`
}

type WeeklyRotation struct {
	Nightfall NightfallRotation `json:"nightfall"`
	Raid      RaidRotation      `json:"raid"`
	Dungeon   DungeonRotation   `json:"dungeon"`
}

// WeeklyRotationPatch is a section-level partial update; nil sections are
// left untouched.
type WeeklyRotationPatch struct {
	Nightfall *NightfallRotation `json:"nightfall,omitempty"`
	Raid      *RaidRotation      `json:"raid,omitempty"`
	Dungeon   *DungeonRotation   `json:"dungeon,omitempty"`
}

type LostSectorDetail struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Reward    string   `json:"reward"`
	Champions []string `json:"champions"`
	Shields   []string `json:"shields"`
	Modifiers []string `json:"modifiers"`
}

type LostSectorRotation struct {
	Legend    LostSectorDetail `json:"legend"`
	Master    LostSectorDetail `json:"master"`
	ResetDate string           `json:"resetDate"`
}

type DailyRotations struct {
	LostSector LostSectorRotation `json:"lostSector"`
}

type DailyRotationsPatch struct {
	LostSector *LostSectorRotation `json:"lostSector,omitempty"`
}

type TrackerMetadata struct {
	LastUpdated     string   `json:"lastUpdated"`
	UpdateFrequency string   `json:"updateFrequency"`
	Sources         []string `json:"sources"`
	Version         string   `json:"version"`
}

// TrackerDocument is the composite season-tracker document persisted as one
// JSON file. Invariant: CurrentSeason references an id in SeasonHistory and
// exactly one history entry is active; neither is enforced atomically by the
// storage layer.
type TrackerDocument struct {
	CurrentSeason   string             `json:"currentSeason"`
	SeasonHistory   []HistoricalSeason `json:"seasonHistory"`
	UpcomingSeason  UpcomingSeason     `json:"upcomingSeason"`
	SeasonalEvents  SeasonalEvents     `json:"seasonalEvents"`
	WeeklyRotations WeeklyRotation     `json:"weeklyRotations"`
	DailyRotations  DailyRotations     `json:"dailyRotations"`
	Metadata        TrackerMetadata    `json:"metadata"`
}

// SeasonStats is derived from wall-clock time versus the current season's
// start and end dates.
type SeasonStats struct {
	TotalSeasons         int    `json:"totalSeasons"`
	CurrentSeasonNumber  int    `json:"currentSeasonNumber"`
	CurrentSeasonName    string `json:"currentSeasonName"`
	DaysInCurrentSeason  int    `json:"daysInCurrentSeason"`
	DaysUntilSeasonEnd   int    `json:"daysUntilSeasonEnd"`
	UpcomingSeasonNumber int    `json:"upcomingSeasonNumber"`
}
