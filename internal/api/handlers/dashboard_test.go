package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/testutil"
)

type dashboardBody struct {
	Authenticated bool                     `json:"authenticated"`
	Stats         *domain.DataStats        `json:"stats"`
	CurrentSeason *domain.HistoricalSeason `json:"currentSeason"`
	SeasonStats   *domain.SeasonStats      `json:"seasonStats"`
}

func TestDashboard_Unauthenticated(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// No key is still a 200, just without the data.
	var body dashboardBody
	testutil.AssertSuccess(t, ts.Get(t, "/admin/dashboard"), http.StatusOK, &body)
	assert.False(t, body.Authenticated)
	assert.Nil(t, body.Stats)
	assert.Nil(t, body.CurrentSeason)
}

func TestDashboard_Authenticated(t *testing.T) {
	ts := testutil.NewTestServer(t)

	require.NoError(t, ts.Store.SaveWeapons([]domain.Weapon{
		testutil.NewWeaponBuilder().Build(),
	}))

	resp := ts.Send(t, http.MethodGet, "/admin/dashboard", testutil.TestAPIKey, nil)

	var body dashboardBody
	testutil.AssertSuccess(t, resp, http.StatusOK, &body)
	assert.True(t, body.Authenticated)
	require.NotNil(t, body.Stats)
	assert.Equal(t, 1, body.Stats.Weapons)
	require.NotNil(t, body.CurrentSeason)
	assert.Equal(t, "season-of-the-wish", body.CurrentSeason.ID)
}

func TestHealthCheck(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BaseURL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSitemapAndRobots(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.WritePost(t, "solar-hunter.md", "---\ntitle: Solar Hunter\npublishedAt: 2024-01-10T12:00:00Z\n---\nbody")

	resp, err := http.Get(ts.BaseURL() + "/sitemap.xml")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	sitemap, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "/posts/solar-hunter")

	resp, err = http.Get(ts.BaseURL() + "/robots.txt")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	robots, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://builds.test/sitemap.xml")
}
