// Package season owns the composite season-tracker document: current and
// historical seasons, the upcoming season, seasonal events and the weekly
// and daily rotations.
//
// Unlike game-data collections, the tracker document must exist: loads fail
// hard when the file is missing or unparsable. All mutations funnel through
// one load→mutate→save path on a cached in-process copy, so a reader after
// a write always sees the latest state within the same process.
package season

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/drbuilds/builds-backend/internal/domain"
)

// RotationKind selects which rotation IsRotationOutdated inspects.
type RotationKind string

const (
	RotationDaily  RotationKind = "daily"
	RotationWeekly RotationKind = "weekly"
)

// Tracker reads and mutates the season-tracker document at
// dataDir/seasons/season-tracker.json.
type Tracker struct {
	path string

	mu  sync.Mutex
	doc *domain.TrackerDocument

	now func() time.Time
}

func New(dataDir string) *Tracker {
	return &Tracker{
		path: filepath.Join(dataDir, "seasons", "season-tracker.json"),
		now:  time.Now,
	}
}

// Load returns a snapshot of the tracker document, reading it from disk on
// first use. A missing or unparsable document is a hard error. The snapshot
// is detached from the cached copy: later writes never show through it.
func (t *Tracker) Load() (*domain.TrackerDocument, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return nil, err
	}
	return cloneDocument(doc), nil
}

// cloneDocument copies the document plus every slice a writer mutates in
// place, so callers outside the mutex never alias the cached copy. History
// entries and events are replaced wholesale on write, never edited through
// their own inner slices, so a per-element copy is enough.
func cloneDocument(doc *domain.TrackerDocument) *domain.TrackerDocument {
	out := *doc
	out.SeasonHistory = append([]domain.HistoricalSeason(nil), doc.SeasonHistory...)
	out.SeasonalEvents.Current = append([]domain.SeasonalEvent(nil), doc.SeasonalEvents.Current...)
	out.SeasonalEvents.Upcoming = append([]domain.SeasonalEvent(nil), doc.SeasonalEvents.Upcoming...)
	return &out
}

func (t *Tracker) loadLocked() (*domain.TrackerDocument, error) {
	if t.doc != nil {
		return t.doc, nil
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTrackerUnreadable, err)
	}

	var doc domain.TrackerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTrackerUnreadable, err)
	}

	t.doc = &doc
	return t.doc, nil
}

// saveLocked persists doc atomically and replaces the cached copy.
func (t *Tracker) saveLocked(doc *domain.TrackerDocument) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("unable to save season tracking data: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to save season tracking data: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(t.path), "season-tracker.tmp-*")
	if err != nil {
		return fmt.Errorf("unable to save season tracking data: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("unable to save season tracking data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("unable to save season tracking data: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("unable to save season tracking data: %w", err)
	}

	t.doc = doc
	return nil
}

func (t *Tracker) touchLocked(doc *domain.TrackerDocument) {
	doc.Metadata.LastUpdated = t.now().UTC().Format(time.RFC3339)
}

// CurrentSeason resolves the history entry referenced by currentSeason and
// returns a copy of it. A dangling reference is a data-integrity problem; it
// surfaces as nil rather than an error so read paths can degrade gracefully.
func (t *Tracker) CurrentSeason() (*domain.HistoricalSeason, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return nil, err
	}
	found := findSeason(doc.SeasonHistory, doc.CurrentSeason)
	if found == nil {
		return nil, nil
	}
	season := *found
	return &season, nil
}

func findSeason(history []domain.HistoricalSeason, id string) *domain.HistoricalSeason {
	for i := range history {
		if history[i].ID == id {
			return &history[i]
		}
	}
	return nil
}

// SetCurrentSeason deactivates every history entry, activates the one
// matching id, updates the currentSeason pointer and persists. When id is
// not in history nothing is mutated or saved.
func (t *Tracker) SetCurrentSeason(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return err
	}

	if findSeason(doc.SeasonHistory, id) == nil {
		return fmt.Errorf("%w: %s", domain.ErrSeasonNotFound, id)
	}

	for i := range doc.SeasonHistory {
		doc.SeasonHistory[i].Active = doc.SeasonHistory[i].ID == id
	}
	doc.CurrentSeason = id
	t.touchLocked(doc)

	return t.saveLocked(doc)
}

// AddSeasonToHistory upserts by id. New seasons are prepended: the history
// list is kept most-recent-first.
func (t *Tracker) AddSeasonToHistory(season domain.HistoricalSeason) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return err
	}

	if existing := findSeason(doc.SeasonHistory, season.ID); existing != nil {
		*existing = season
	} else {
		doc.SeasonHistory = append([]domain.HistoricalSeason{season}, doc.SeasonHistory...)
	}

	t.touchLocked(doc)
	return t.saveLocked(doc)
}

// UpdateWeeklyRotations shallow-merges the non-nil sections of the patch.
// Omitted sections are left untouched.
func (t *Tracker) UpdateWeeklyRotations(patch domain.WeeklyRotationPatch) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return err
	}

	if patch.Nightfall != nil {
		doc.WeeklyRotations.Nightfall = *patch.Nightfall
	}
	if patch.Raid != nil {
		doc.WeeklyRotations.Raid = *patch.Raid
	}
	if patch.Dungeon != nil {
		doc.WeeklyRotations.Dungeon = *patch.Dungeon
	}

	t.touchLocked(doc)
	return t.saveLocked(doc)
}

// UpdateDailyRotations is the daily counterpart of UpdateWeeklyRotations.
func (t *Tracker) UpdateDailyRotations(patch domain.DailyRotationsPatch) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return err
	}

	if patch.LostSector != nil {
		doc.DailyRotations.LostSector = *patch.LostSector
	}

	t.touchLocked(doc)
	return t.saveLocked(doc)
}

func (t *Tracker) UpcomingSeason() (*domain.UpcomingSeason, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return nil, err
	}
	upcoming := doc.UpcomingSeason
	return &upcoming, nil
}

// UpdateUpcomingSeason merges the non-zero fields of the partial record.
func (t *Tracker) UpdateUpcomingSeason(patch domain.UpcomingSeason) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return err
	}

	if patch.EstimatedStart != "" {
		doc.UpcomingSeason.EstimatedStart = patch.EstimatedStart
	}
	if patch.Number != 0 {
		doc.UpcomingSeason.Number = patch.Number
	}
	if patch.Expansion != "" {
		doc.UpcomingSeason.Expansion = patch.Expansion
	}
	if patch.Name != "" {
		doc.UpcomingSeason.Name = patch.Name
	}

	t.touchLocked(doc)
	return t.saveLocked(doc)
}

// AddSeasonalEvent upserts an event by name into the current or upcoming
// list.
func (t *Tracker) AddSeasonalEvent(event domain.SeasonalEvent, isCurrent bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return err
	}

	list := &doc.SeasonalEvents.Upcoming
	if isCurrent {
		list = &doc.SeasonalEvents.Current
	}

	replaced := false
	for i := range *list {
		if (*list)[i].Name == event.Name {
			(*list)[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		*list = append(*list, event)
	}

	t.touchLocked(doc)
	return t.saveLocked(doc)
}

func (t *Tracker) SeasonByNumber(number int) (*domain.HistoricalSeason, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return nil, err
	}
	for i := range doc.SeasonHistory {
		if doc.SeasonHistory[i].Number == number {
			season := doc.SeasonHistory[i]
			return &season, nil
		}
	}
	return nil, nil
}

func (t *Tracker) SeasonsByExpansion(expansion string) ([]domain.HistoricalSeason, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return nil, err
	}

	var out []domain.HistoricalSeason
	for _, s := range doc.SeasonHistory {
		if s.Expansion == expansion {
			out = append(out, s)
		}
	}
	return out, nil
}

// Stats derives day counts from wall-clock time versus the current season's
// start and end dates. Unlike CurrentSeason, a dangling currentSeason
// reference is a hard error here.
func (t *Tracker) Stats() (*domain.SeasonStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return nil, err
	}

	current := findSeason(doc.SeasonHistory, doc.CurrentSeason)
	if current == nil {
		return nil, domain.ErrNoCurrentSeason
	}

	now := t.now()
	start, err := parseDate(current.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid season start date: %w", err)
	}
	end, err := parseDate(current.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid season end date: %w", err)
	}

	return &domain.SeasonStats{
		TotalSeasons:         len(doc.SeasonHistory),
		CurrentSeasonNumber:  current.Number,
		CurrentSeasonName:    current.Name,
		DaysInCurrentSeason:  wholeDays(now.Sub(start)),
		DaysUntilSeasonEnd:   wholeDays(end.Sub(now)),
		UpcomingSeasonNumber: doc.UpcomingSeason.Number,
	}, nil
}

// IsRotationOutdated compares now against the stored reset timestamp at
// whole-day granularity: a daily rotation is stale after one day, a weekly
// one after seven. The actual reset time-of-day is not considered.
func (t *Tracker) IsRotationOutdated(kind RotationKind) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.loadLocked()
	if err != nil {
		return false, err
	}

	var resetDate string
	threshold := 7
	if kind == RotationDaily {
		resetDate = doc.DailyRotations.LostSector.ResetDate
		threshold = 1
	} else {
		resetDate = doc.WeeklyRotations.Nightfall.ResetDate
	}

	reset, err := parseDate(resetDate)
	if err != nil {
		return false, fmt.Errorf("invalid rotation reset date: %w", err)
	}
	return wholeDays(t.now().Sub(reset)) >= threshold, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// wholeDays floors, so a partial day past a deadline already counts as -1.
func wholeDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}
