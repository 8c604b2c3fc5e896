package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileModel "streamku_backend/internals/features/users/profile/model"
	"streamku_backend/internals/testutil"
)

func TestCreateProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	plan := testutil.SeedPlan(t, db, "Standard", 15.99, 2)
	acc := testutil.SeedAccount(t, db, "alice@example.com", "secret123", plan.SubscriptionID)
	token := testutil.AccountToken(t, acc.AccountID)

	t.Run("success", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/profiles", token, map[string]any{
			"name":            "Alice",
			"age_rating_pref": "PG-13",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Alice", body["name"])
		assert.NotZero(t, body["profile_id"])
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/profiles", token, map[string]any{
			"name": "NoPref",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "name and age_rating_pref required", body["error"])
	})

	t.Run("limit reached", func(t *testing.T) {
		// Plan allows 2; one was created above.
		resp, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/profiles", token, map[string]any{
			"name":            "Second",
			"age_rating_pref": "R",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/profiles", token, map[string]any{
			"name":            "Third",
			"age_rating_pref": "G",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Profile limit reached", body["error"])
	})
}

func TestGetProfiles(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	plan := testutil.SeedPlan(t, db, "Premium", 19.99, 4)
	acc := testutil.SeedAccount(t, db, "alice@example.com", "secret123", plan.SubscriptionID)
	other := testutil.SeedAccount(t, db, "bob@example.com", "secret123", plan.SubscriptionID)
	token := testutil.AccountToken(t, acc.AccountID)

	testutil.SeedProfile(t, db, acc.AccountID, "Mine")
	testutil.SeedProfile(t, db, other.AccountID, "NotMine")

	resp, list := testutil.DoJSONList(t, app, http.MethodGet, "/api/profiles", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0]["name"])
}

func TestGetProfileOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	plan := testutil.SeedPlan(t, db, "Premium", 19.99, 4)
	acc := testutil.SeedAccount(t, db, "alice@example.com", "secret123", plan.SubscriptionID)
	other := testutil.SeedAccount(t, db, "bob@example.com", "secret123", plan.SubscriptionID)
	token := testutil.AccountToken(t, acc.AccountID)

	mine := testutil.SeedProfile(t, db, acc.AccountID, "Mine")
	theirs := testutil.SeedProfile(t, db, other.AccountID, "Theirs")

	t.Run("own profile", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/api/profiles/%d", mine.ProfileID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Mine", body["name"])
	})

	t.Run("someone else's profile looks like a missing one", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/api/profiles/%d", theirs.ProfileID), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Profile not found", body["error"])
	})

	t.Run("nonexistent profile", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, "/api/profiles/9999", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Profile not found", body["error"])
	})
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	plan := testutil.SeedPlan(t, db, "Premium", 19.99, 4)
	acc := testutil.SeedAccount(t, db, "alice@example.com", "secret123", plan.SubscriptionID)
	token := testutil.AccountToken(t, acc.AccountID)
	p := testutil.SeedProfile(t, db, acc.AccountID, "Before")

	resp, body := testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/api/profiles/%d", p.ProfileID), token, map[string]any{
		"name": "After",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Profile updated", body["message"])

	var saved profileModel.ProfileModel
	require.NoError(t, db.First(&saved, p.ProfileID).Error)
	assert.Equal(t, "After", saved.Name)
	assert.Equal(t, "PG-13", saved.AgeRatingPref) // untouched field survives
}

func TestDeleteProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	plan := testutil.SeedPlan(t, db, "Premium", 19.99, 4)
	acc := testutil.SeedAccount(t, db, "alice@example.com", "secret123", plan.SubscriptionID)
	other := testutil.SeedAccount(t, db, "bob@example.com", "secret123", plan.SubscriptionID)
	token := testutil.AccountToken(t, acc.AccountID)

	mine := testutil.SeedProfile(t, db, acc.AccountID, "Mine")
	theirs := testutil.SeedProfile(t, db, other.AccountID, "Theirs")

	t.Run("deletes own profile", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/profiles/%d", mine.ProfileID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Profile deleted", body["message"])

		var count int64
		db.Model(&profileModel.ProfileModel{}).Where("profile_id = ?", mine.ProfileID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("cannot delete another account's profile", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/profiles/%d", theirs.ProfileID), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Profile not found", body["error"])
	})
}
