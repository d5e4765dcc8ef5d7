package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/testutil"
)

func TestCreateArtifact(t *testing.T) {
	ts := testutil.NewTestServer(t)

	payload := testutil.NewArtifactBuilder().Build()
	resp := ts.Send(t, http.MethodPost, "/admin/artifacts", testutil.TestAPIKey, payload)

	var stored domain.Artifact
	testutil.AssertSuccess(t, resp, http.StatusOK, &stored)
	assert.Equal(t, "wish-keepers-oath", stored.ID)
	require.Len(t, stored.Mods, 1)

	artifacts := ts.Store.LoadArtifacts()
	require.Len(t, artifacts, 1)
}

func TestCreateArtifact_NestedModFailure(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// A zero column is invalid; the error names the offending mod position.
	payload := testutil.NewArtifactBuilder().WithModColumn(0, 0).Build()
	resp := ts.Send(t, http.MethodPost, "/admin/artifacts", testutil.TestAPIKey, payload)

	testutil.AssertError(t, resp, http.StatusBadRequest, "mods[0] - column must be a positive number")
	assert.Empty(t, ts.Store.LoadArtifacts())
}

func TestListArtifacts_Filters(t *testing.T) {
	ts := testutil.NewTestServer(t)

	require.NoError(t, ts.Store.SaveArtifacts([]domain.Artifact{
		testutil.NewArtifactBuilder().WithID("a").WithSeason("s1").Build(),
		testutil.NewArtifactBuilder().WithID("b").WithSeason("s2").Build(),
	}))

	var artifacts []domain.Artifact

	testutil.AssertSuccess(t, ts.Get(t, "/artifacts"), http.StatusOK, &artifacts)
	assert.Len(t, artifacts, 2)

	testutil.AssertSuccess(t, ts.Get(t, "/artifacts?season=s1"), http.StatusOK, &artifacts)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "a", artifacts[0].ID)
}
