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

func TestBrowseSeries(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)

	show := testutil.SeedContent(t, db, "Cosmic Adventures", contentModel.TypeShow, 2023)
	// Inserted out of order to prove the responses are sorted.
	s2 := testutil.SeedSeason(t, db, show.ContentID, 2)
	s1 := testutil.SeedSeason(t, db, show.ContentID, 1)
	testutil.SeedEpisode(t, db, s1.SeasonID, "The Discovery", 2)
	ep := testutil.SeedEpisode(t, db, s1.SeasonID, "Pilot", 1)

	t.Run("seasons ordered by number", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, fmt.Sprintf("/api/content/%d/seasons", show.ContentID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 2)
		assert.EqualValues(t, 1, list[0]["season_number"])
		assert.EqualValues(t, 2, list[1]["season_number"])
	})

	t.Run("episodes ordered by number", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, fmt.Sprintf("/api/seasons/%d/episodes", s1.SeasonID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 2)
		assert.Equal(t, "Pilot", list[0]["title"])
		assert.Equal(t, "The Discovery", list[1]["title"])
	})

	t.Run("season with no episodes", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, fmt.Sprintf("/api/seasons/%d/episodes", s2.SeasonID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, list)
	})

	t.Run("single episode", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/api/episodes/%d", ep.EpisodeID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Pilot", body["title"])
		assert.EqualValues(t, 1, body["episode_number"])
	})

	t.Run("missing episode", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, "/api/episodes/9999", "", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Episode not found", body["error"])
	})
}

func TestAdminSeriesCRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	admin := testutil.SeedAdmin(t, db, "admin", "admin123")
	token := testutil.AdminToken(t, admin.AdminID)
	show := testutil.SeedContent(t, db, "Cosmic Adventures", contentModel.TypeShow, 2023)

	t.Run("create season", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/content/%d/seasons", show.ContentID), token, map[string]any{
			"season_number": 1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotZero(t, body["season_id"])
	})

	t.Run("season zero is allowed", func(t *testing.T) {
		resp, _ := testutil.DoJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/content/%d/seasons", show.ContentID), token, map[string]any{
			"season_number": 0,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("create season without number", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/content/%d/seasons", show.ContentID), token, map[string]any{})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "season_number required", body["error"])
	})

	t.Run("episode lifecycle", func(t *testing.T) {
		season := testutil.SeedSeason(t, db, show.ContentID, 5)

		resp, body := testutil.DoJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/seasons/%d/episodes", season.SeasonID), token, map[string]any{
			"title":          "Opener",
			"episode_number": 1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		episodeID := int(body["episode_id"].(float64))

		resp, body = testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/episodes/%d", episodeID), token, map[string]any{
			"title": "Grand Opener",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Episode updated", body["message"])

		var saved seriesModel.EpisodeModel
		require.NoError(t, db.First(&saved, episodeID).Error)
		assert.Equal(t, "Grand Opener", saved.Title)
		assert.Equal(t, 1, saved.EpisodeNumber)

		resp, body = testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/episodes/%d", episodeID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Episode deleted", body["message"])
	})

	t.Run("create episode without fields", func(t *testing.T) {
		season := testutil.SeedSeason(t, db, show.ContentID, 6)
		resp, body := testutil.DoJSON(t, app, http.MethodPost, fmt.Sprintf("/api/admin/seasons/%d/episodes", season.SeasonID), token, map[string]any{
			"title": "No Number",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "title and episode_number required", body["error"])
	})

	t.Run("delete season cascades to episodes", func(t *testing.T) {
		season := testutil.SeedSeason(t, db, show.ContentID, 7)
		testutil.SeedEpisode(t, db, season.SeasonID, "Doomed", 1)

		resp, body := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/seasons/%d", season.SeasonID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Season deleted", body["message"])

		var count int64
		db.Model(&seriesModel.EpisodeModel{}).Where("season_id = ?", season.SeasonID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("delete missing season", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, "/api/admin/seasons/9999", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Season not found", body["error"])
	})
}
