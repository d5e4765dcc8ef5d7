package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/testutil"
)

func TestCreateMod(t *testing.T) {
	ts := testutil.NewTestServer(t)

	payload := testutil.NewModBuilder().WithID("").WithName("Font of Might").Build()
	resp := ts.Send(t, http.MethodPost, "/admin/mods", testutil.TestAPIKey, payload)

	var stored domain.Mod
	testutil.AssertSuccess(t, resp, http.StatusOK, &stored)
	assert.Equal(t, "font-of-might", stored.ID)

	mods := ts.Store.LoadMods()
	require.Len(t, mods, 1)
}

func TestCreateMod_ValidationFailure(t *testing.T) {
	ts := testutil.NewTestServer(t)

	payload := testutil.NewModBuilder().WithCategory("Nonsense").Build()
	resp := ts.Send(t, http.MethodPost, "/admin/mods", testutil.TestAPIKey, payload)

	testutil.AssertError(t, resp, http.StatusBadRequest, "category")
	assert.Empty(t, ts.Store.LoadMods())
}

func TestListMods_Filters(t *testing.T) {
	ts := testutil.NewTestServer(t)

	require.NoError(t, ts.Store.SaveMods([]domain.Mod{
		testutil.NewModBuilder().WithID("a").WithCategory(domain.ModCategoryCombat).Build(),
		testutil.NewModBuilder().WithID("b").WithCategory(domain.ModCategoryCombat).WithActive(false).Build(),
		testutil.NewModBuilder().WithID("c").WithCategory(domain.ModCategoryRaid).Build(),
	}))

	var mods []domain.Mod

	testutil.AssertSuccess(t, ts.Get(t, "/mods"), http.StatusOK, &mods)
	assert.Len(t, mods, 3)

	testutil.AssertSuccess(t, ts.Get(t, "/mods?category=Combat"), http.StatusOK, &mods)
	assert.Len(t, mods, 2)

	testutil.AssertSuccess(t, ts.Get(t, "/mods?category=Combat&active=true"), http.StatusOK, &mods)
	require.Len(t, mods, 1)
	assert.Equal(t, "a", mods[0].ID)
}
