package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentModel "streamku_backend/internals/features/catalog/content/model"
	"streamku_backend/internals/testutil"
)

func TestMediaFiles(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	admin := testutil.SeedAdmin(t, db, "admin", "admin123")
	token := testutil.AdminToken(t, admin.AdminID)
	movie := testutil.SeedContent(t, db, "The Space Odyssey", contentModel.TypeMovie, 2023)

	createURL := fmt.Sprintf("/api/admin/content/%d/media", movie.ContentID)
	publicURL := fmt.Sprintf("/api/content/%d/media", movie.ContentID)

	var mediaID int

	t.Run("create", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, createURL, token, map[string]any{
			"resolution": "1080p",
			"language":   "English",
			"file_path":  "/media/odyssey_1080p_en.mp4",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NotZero(t, body["media_id"])
		mediaID = int(body["media_id"].(float64))
	})

	t.Run("create with missing fields", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, createURL, token, map[string]any{
			"resolution": "720p",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "resolution, language, and file_path required", body["error"])
	})

	t.Run("public listing", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, publicURL, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 1)
		assert.Equal(t, "1080p", list[0]["resolution"])
		assert.Equal(t, "/media/odyssey_1080p_en.mp4", list[0]["file_path"])
	})

	t.Run("delete", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/media/%d", mediaID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Media file deleted", body["message"])
	})

	t.Run("delete missing file", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, "/api/admin/media/9999", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Media file not found", body["error"])
	})
}
