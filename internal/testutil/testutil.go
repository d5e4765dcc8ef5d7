package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drbuilds/builds-backend/internal/api"
	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/config"
	"github.com/drbuilds/builds-backend/internal/content"
	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/season"
	"github.com/drbuilds/builds-backend/internal/store"
)

// TestAPIKey is the admin key every test server is configured with.
const TestAPIKey = "test-admin-api-key"

// TestConfig returns a configuration suitable for testing
func TestConfig(dataDir, contentDir string) *config.Config {
	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		DataDir:        dataDir,
		ContentDir:     contentDir,
		AdminAPIKey:    TestAPIKey,
		SiteURL:        "https://builds.test",
		CacheTTL:       time.Minute,
		AllowedOrigins: []string{"*"},
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server  *httptest.Server
	Store   *store.Store
	Tracker *season.Tracker
	Loader  *content.Loader
	Cache   *cache.Cache
	Config  *config.Config

	DataDir    string
	ContentDir string
}

// NewTestServer creates a complete test server over throwaway data and
// content directories. The tracker document is seeded so season reads work
// out of the box.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dataDir := t.TempDir()
	contentDir := t.TempDir()
	cfg := TestConfig(dataDir, contentDir)

	SeedTrackerDocument(t, dataDir)

	st := store.New(dataDir)
	tracker := season.New(dataDir)
	loader := content.NewLoader(contentDir)
	c := cache.New()

	router := api.NewRouter(st, tracker, loader, c, cfg)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:     server,
		Store:      st,
		Tracker:    tracker,
		Loader:     loader,
		Cache:      c,
		Config:     cfg,
		DataDir:    dataDir,
		ContentDir: contentDir,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// Get performs a GET against an API path.
func (ts *TestServer) Get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.APIURL(path))
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

// Send performs a JSON request against an API path. An empty apiKey leaves
// the header off entirely.
func (ts *TestServer) Send(t *testing.T, method, path, apiKey string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.APIURL(path), &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

// WritePost drops a markdown file into the server's posts directory.
func (ts *TestServer) WritePost(t *testing.T, name, content string) {
	t.Helper()

	postsDir := filepath.Join(ts.ContentDir, "posts")
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		t.Fatalf("failed to create posts dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(postsDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write post: %v", err)
	}
}

// SeedTrackerDocument writes a minimal valid tracker file under dataDir.
func SeedTrackerDocument(t *testing.T, dataDir string) {
	t.Helper()

	doc := domain.TrackerDocument{
		CurrentSeason: "season-of-the-wish",
		SeasonHistory: []domain.HistoricalSeason{
			{
				ID:        "season-of-the-wish",
				Number:    23,
				Name:      "Season of the Wish",
				StartDate: "2023-11-28T17:00:00Z",
				EndDate:   "2024-06-04T17:00:00Z",
				Active:    true,
				Expansion: "Lightfall",
			},
			{
				ID:        "season-of-the-witch",
				Number:    22,
				Name:      "Season of the Witch",
				StartDate: "2023-08-22T17:00:00Z",
				EndDate:   "2023-11-28T17:00:00Z",
				Expansion: "Lightfall",
			},
		},
		UpcomingSeason: domain.UpcomingSeason{
			Number:         24,
			Name:           "Episode: Echoes",
			Expansion:      "The Final Shape",
			EstimatedStart: "2024-06-04",
		},
		WeeklyRotations: domain.WeeklyRotation{
			Nightfall: domain.NightfallRotation{Current: "The Glassway", ResetDate: "2024-01-02T17:00:00Z"},
			Raid:      domain.RaidRotation{Featured: "Last Wish", ResetDate: "2024-01-02T17:00:00Z"},
			Dungeon:   domain.DungeonRotation{Featured: "Duality", ResetDate: "2024-01-02T17:00:00Z"},
		},
		DailyRotations: domain.DailyRotations{
			LostSector: domain.LostSectorRotation{
				Legend:    domain.LostSectorDetail{Name: "K1 Crew Quarters", Location: "Moon"},
				Master:    domain.LostSectorDetail{Name: "K1 Crew Quarters", Location: "Moon"},
				ResetDate: "2024-01-02T17:00:00Z",
			},
		},
		Metadata: domain.TrackerMetadata{
			LastUpdated:     "2024-01-02T17:00:00Z",
			UpdateFrequency: "weekly",
			Version:         "1.0.0",
		},
	}

	seasonsDir := filepath.Join(dataDir, "seasons")
	if err := os.MkdirAll(seasonsDir, 0o755); err != nil {
		t.Fatalf("failed to create seasons dir: %v", err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal tracker document: %v", err)
	}
	if err := os.WriteFile(filepath.Join(seasonsDir, "season-tracker.json"), raw, 0o644); err != nil {
		t.Fatalf("failed to write tracker document: %v", err)
	}
}
