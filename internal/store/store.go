// Package store maps each game-data collection to exactly one JSON file
// under the data directory and provides typed, cached access on top.
//
// Collections are allowed to not exist yet: loads fail soft to an empty
// collection. Saves always rewrite the whole file (no partial collection is
// ever visible thanks to a temp-file rename). Within one process the
// load→mutate→save path is serialized by the store mutex; concurrent
// processes sharing the same directory race with last-write-wins semantics.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/drbuilds/builds-backend/internal/domain"
)

// SchemaVersion is stamped on the assembled GameData aggregate.
const SchemaVersion = "1.0.0"

const (
	weaponsFile    = "weapons.json"
	armorFile      = "armor.json"
	modsFile       = "mods.json"
	artifactsFile  = "artifacts.json"
	subclassesFile = "subclasses.json"
	activitiesFile = "activities.json"
	vendorsFile    = "vendors.json"
	metaFile       = "meta.json"

	currentSeasonFile = "current-season.json"
)

// Store is the file-backed data manager. The zero value is not usable; use New.
type Store struct {
	gameDir string

	mu       sync.Mutex
	gameData *domain.GameData

	now func() time.Time
}

// New creates a store rooted at dataDir. Collections live under
// dataDir/game. Nothing is read until first access.
func New(dataDir string) *Store {
	return &Store{
		gameDir: filepath.Join(dataDir, "game"),
		now:     time.Now,
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.gameDir, name)
}

// readCollection reads a whole JSON array. A missing or unparsable file is
// not an error: collections may simply not exist yet.
func readCollection[T any](s *Store, name string) []T {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// A single object is tolerated and wrapped into a one-element slice.
		var single T
		if err := json.Unmarshal(data, &single); err != nil {
			return []T{}
		}
		return []T{single}
	}
	return items
}

// writeFile persists v as indented JSON via a temp file and rename, so a
// reader never observes a half-written document.
func (s *Store) writeFile(name string, v any) error {
	if err := os.MkdirAll(s.gameDir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.gameDir, name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}

// saveCollection overwrites the named collection and drops the aggregate
// cache. Callers are expected to have validated the entries already.
func saveCollection[T any](s *Store, name string, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCollectionLocked(s, name, items)
}

func saveCollectionLocked[T any](s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := s.writeFile(name, items); err != nil {
		return err
	}
	s.gameData = nil
	return nil
}

// upsert replaces the entry whose id matches (exact string equality) or
// appends when absent, then saves the whole collection.
func upsert[T any](s *Store, name string, item T, idOf func(T) string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := readCollection[T](s, name)
	replaced := false
	for i := range items {
		if idOf(items[i]) == idOf(item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return saveCollectionLocked(s, name, items)
}

// CurrentSeason reads the standalone current-season pointer file. A missing
// or unreadable file yields nil, never an error: the pointer is optional.
// This file is independent of the season tracker's document.
func (s *Store) CurrentSeason() *domain.Season {
	data, err := os.ReadFile(s.path(currentSeasonFile))
	if err != nil {
		return nil
	}

	var season domain.Season
	if err := json.Unmarshal(data, &season); err != nil {
		return nil
	}
	return &season
}

// SetCurrentSeason overwrites the current-season pointer file and drops the
// aggregate cache.
func (s *Store) SetCurrentSeason(season *domain.Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeFile(currentSeasonFile, season); err != nil {
		return err
	}
	s.gameData = nil
	return nil
}
