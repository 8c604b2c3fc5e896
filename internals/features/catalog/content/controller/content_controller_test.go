package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentModel "streamku_backend/internals/features/catalog/content/model"
	seriesModel "streamku_backend/internals/features/catalog/series/model"
	"streamku_backend/internals/testutil"
)

func TestBrowseContent(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)

	scifi := testutil.SeedGenre(t, db, "Sci-Fi")
	comedy := testutil.SeedGenre(t, db, "Comedy")

	odyssey := testutil.SeedContent(t, db, "The Space Odyssey", contentModel.TypeMovie, 2023)
	laughter := testutil.SeedContent(t, db, "Midnight Laughter", contentModel.TypeMovie, 2022)
	show := testutil.SeedContent(t, db, "Cosmic Adventures", contentModel.TypeShow, 2023)

	testutil.LinkGenre(t, db, odyssey.ContentID, scifi.GenreID)
	testutil.LinkGenre(t, db, laughter.ContentID, comedy.GenreID)
	testutil.LinkGenre(t, db, show.ContentID, scifi.GenreID)

	t.Run("no filters returns everything", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, "/api/content", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, list, 3)
	})

	t.Run("filter by type", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, "/api/content?type=Show", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 1)
		assert.Equal(t, "Cosmic Adventures", list[0]["title"])
	})

	t.Run("filter by genre", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, "/api/content?genre=Sci-Fi", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, list, 2)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, "/api/content?genre=Sci-Fi&type=Movie&year=2023", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 1)
		assert.Equal(t, "The Space Odyssey", list[0]["title"])
	})

	t.Run("unmatched filters yield an empty array", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, "/api/content?year=1999", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, list)
	})

	t.Run("non-integer year", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, "/api/content?year=abc", "", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "year must be an integer", body["error"])
	})
}

func TestGetContent(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	movie := testutil.SeedContent(t, db, "The Last Stand", contentModel.TypeMovie, 2024)

	t.Run("found", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/api/content/%d", movie.ContentID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "The Last Stand", body["title"])
		assert.EqualValues(t, 2024, body["release_year"])
	})

	t.Run("missing", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, "/api/content/9999", "", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Content not found", body["error"])
	})
}

func TestAdminContentCRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	admin := testutil.SeedAdmin(t, db, "admin", "admin123")
	token := testutil.AdminToken(t, admin.AdminID)

	t.Run("create", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/content", token, map[string]any{
			"title":        "New Movie",
			"type":         "Movie",
			"description":  "Fresh off the press",
			"release_year": 2025,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotZero(t, body["content_id"])
	})

	t.Run("create with bad type", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/content", token, map[string]any{
			"title":        "Odd One",
			"type":         "Documentary",
			"description":  "wrong kind",
			"release_year": 2025,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "type must be Movie or Show", body["error"])
	})

	t.Run("create with missing fields", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/content", token, map[string]any{
			"title": "Alone",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "title, type, description, and release_year required", body["error"])
	})

	t.Run("partial update", func(t *testing.T) {
		movie := testutil.SeedContent(t, db, "Before", contentModel.TypeMovie, 2020)

		resp, body := testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/content/%d", movie.ContentID), token, map[string]any{
			"title": "After",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Content updated", body["message"])

		var saved contentModel.ContentModel
		require.NoError(t, db.First(&saved, movie.ContentID).Error)
		assert.Equal(t, "After", saved.Title)
		assert.Equal(t, 2020, saved.ReleaseYear)
	})

	t.Run("delete cascades to seasons and episodes", func(t *testing.T) {
		show := testutil.SeedContent(t, db, "Doomed Show", contentModel.TypeShow, 2021)
		season := testutil.SeedSeason(t, db, show.ContentID, 1)
		testutil.SeedEpisode(t, db, season.SeasonID, "Pilot", 1)

		resp, body := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/content/%d", show.ContentID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Content deleted", body["message"])

		var seasons, episodes int64
		db.Model(&seriesModel.SeasonModel{}).Where("content_id = ?", show.ContentID).Count(&seasons)
		db.Model(&seriesModel.EpisodeModel{}).Where("season_id = ?", season.SeasonID).Count(&episodes)
		assert.Zero(t, seasons)
		assert.Zero(t, episodes)
	})

	t.Run("delete missing content", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, "/api/admin/content/9999", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Content not found", body["error"])
	})

	t.Run("account token is rejected", func(t *testing.T) {
		plan := testutil.SeedPlan(t, db, "Basic", 9.99, 1)
		acc := testutil.SeedAccount(t, db, "user@example.com", "secret123", plan.SubscriptionID)
		userToken := testutil.AccountToken(t, acc.AccountID)

		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/content", userToken, map[string]any{
			"title":        "Sneaky",
			"type":         "Movie",
			"description":  "no",
			"release_year": 2025,
		})
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Admin access required", body["error"])
	})
}
