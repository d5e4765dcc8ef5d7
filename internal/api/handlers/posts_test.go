package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/testutil"
)

func TestGetPost(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.WritePost(t, "solar-hunter.mdx", "---\ntitle: Solar Hunter\ncategory: builds\ntags: [solar]\n---\nA build that melts bosses.")

	var post domain.BlogPost
	testutil.AssertSuccess(t, ts.Get(t, "/posts/solar-hunter"), http.StatusOK, &post)
	assert.Equal(t, "Solar Hunter", post.Title)
	assert.Equal(t, domain.CategoryBuilds, post.Category)
}

func TestGetPost_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := ts.Get(t, "/posts/missing")
	testutil.AssertError(t, resp, http.StatusNotFound, "Post not found")
}

func TestListPosts_FiltersAndPaging(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.WritePost(t, "a.md", "---\ntitle: A\ncategory: builds\nfeatured: true\npublishedAt: 2024-01-03T00:00:00Z\n---\nbody")
	ts.WritePost(t, "b.md", "---\ntitle: B\ncategory: news\npublishedAt: 2024-01-02T00:00:00Z\n---\nbody")
	ts.WritePost(t, "c.md", "---\ntitle: C\ncategory: builds\npublishedAt: 2024-01-01T00:00:00Z\n---\nbody")

	var page domain.PostPage

	testutil.AssertSuccess(t, ts.Get(t, "/posts"), http.StatusOK, &page)
	assert.Equal(t, 3, page.TotalPosts)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, "a", page.Posts[0].Slug)

	testutil.AssertSuccess(t, ts.Get(t, "/posts?category=builds"), http.StatusOK, &page)
	assert.Equal(t, 2, page.TotalPosts)

	testutil.AssertSuccess(t, ts.Get(t, "/posts?featured=true"), http.StatusOK, &page)
	require.Equal(t, 1, page.TotalPosts)
	assert.Equal(t, "a", page.Posts[0].Slug)

	testutil.AssertSuccess(t, ts.Get(t, "/posts?page=2&limit=2"), http.StatusOK, &page)
	assert.Len(t, page.Posts, 1)
	assert.True(t, page.HasPrevPage)
	assert.False(t, page.HasNextPage)
}

func TestRelatedPostsEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.WritePost(t, "a.md", "---\ntitle: A\ncategory: builds\ntags: [solar]\n---\nbody")
	ts.WritePost(t, "b.md", "---\ntitle: B\ncategory: builds\ntags: [solar]\n---\nbody")
	ts.WritePost(t, "c.md", "---\ntitle: C\ncategory: news\n---\nbody")

	var related []domain.BlogPost
	testutil.AssertSuccess(t, ts.Get(t, "/posts/a/related"), http.StatusOK, &related)
	require.Len(t, related, 2)
	assert.Equal(t, "b", related[0].Slug)
}

func TestSearchEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.WritePost(t, "a.md", "---\ntitle: Sword Guide\n---\nbody")

	require.NoError(t, ts.Store.SaveWeapons([]domain.Weapon{
		testutil.NewWeaponBuilder().WithID("falling-guillotine").WithName("Falling Guillotine").Build(),
	}))
	weapons := ts.Store.LoadWeapons()
	weapons[0].Description = "A heavy sword with a spin attack."
	require.NoError(t, ts.Store.SaveWeapons(weapons))

	var result struct {
		Query    string                `json:"query"`
		GameData *domain.SearchResults `json:"gameData"`
		Posts    []domain.BlogPost     `json:"posts"`
	}
	testutil.AssertSuccess(t, ts.Get(t, "/search?q=sword"), http.StatusOK, &result)
	assert.Equal(t, "sword", result.Query)
	require.NotNil(t, result.GameData)
	assert.Len(t, result.GameData.Weapons, 1)
	assert.Len(t, result.Posts, 1)

	resp := ts.Get(t, "/search")
	testutil.AssertError(t, resp, http.StatusBadRequest, "q is required")
}

func TestTagsAndCategoriesEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.WritePost(t, "a.md", "---\ntitle: A\ncategory: builds\ntags: [solar, hunter]\n---\nbody")
	ts.WritePost(t, "b.md", "---\ntitle: B\ncategory: builds\ntags: [solar]\n---\nbody")

	var tags []domain.TagCount
	testutil.AssertSuccess(t, ts.Get(t, "/posts/tags"), http.StatusOK, &tags)
	require.Len(t, tags, 2)
	assert.Equal(t, "solar", tags[0].Slug)

	var categories []domain.CategoryCount
	testutil.AssertSuccess(t, ts.Get(t, "/posts/categories"), http.StatusOK, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Builds", categories[0].Name)
}
