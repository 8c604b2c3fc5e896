package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	historyModel "streamku_backend/internals/features/activity/history/model"
	wishlistModel "streamku_backend/internals/features/activity/wishlist/model"
	adminModel "streamku_backend/internals/features/admins/auth/model"
	contentModel "streamku_backend/internals/features/catalog/content/model"
	genreModel "streamku_backend/internals/features/catalog/genre/model"
	mediaModel "streamku_backend/internals/features/catalog/media/model"
	seriesModel "streamku_backend/internals/features/catalog/series/model"
	subscriptionModel "streamku_backend/internals/features/subscriptions/model"
	accountModel "streamku_backend/internals/features/users/account/model"
	profileModel "streamku_backend/internals/features/users/profile/model"
	"streamku_backend/internals/route"
)

// NewTestDB opens an in-memory SQLite database with foreign keys on and
// migrates the full schema. The pool is pinned to a single connection so
// the shared in-memory database survives for the whole test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Parents before children so the FK constraints resolve.
	err = db.AutoMigrate(
		&subscriptionModel.SubscriptionModel{},
		&accountModel.AccountModel{},
		&profileModel.ProfileModel{},
		&contentModel.ContentModel{},
		&genreModel.GenreModel{},
		&genreModel.ContentGenreModel{},
		&mediaModel.MediaFileModel{},
		&seriesModel.SeasonModel{},
		&seriesModel.EpisodeModel{},
		&wishlistModel.WishlistModel{},
		&historyModel.ViewingHistoryModel{},
		&adminModel.AdminModel{},
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewTestApp builds a Fiber app with the full route table mounted.
func NewTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	route.SetupRoutes(app, db)
	return app
}

// DoJSON issues a request with an optional JSON body and parses the
// JSON response into a generic map, or a slice when the body is an array.
func DoJSON(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	resp := doRequest(t, app, method, target, token, body)
	raw := readBody(t, resp)

	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

// DoJSONList is DoJSON for endpoints that respond with a JSON array.
func DoJSONList(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, []map[string]any) {
	t.Helper()

	resp := doRequest(t, app, method, target, token, body)
	raw := readBody(t, resp)

	var out []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(buf))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return raw
}
