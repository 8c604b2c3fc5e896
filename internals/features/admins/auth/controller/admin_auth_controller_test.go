package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamku_backend/internals/testutil"
)

func TestAdminLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	admin := testutil.SeedAdmin(t, db, "admin", "admin123")

	t.Run("success", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/login", "", map[string]any{
			"username": "admin",
			"password": "admin123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, admin.AdminID, body["admin_id"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/login", "", map[string]any{
			"username": "admin",
			"password": "nope",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("unknown username gets the same message", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/login", "", map[string]any{
			"username": "ghost",
			"password": "whatever",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/login", "", map[string]any{
			"username": "admin",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Username and password required", body["error"])
	})
}

func TestAdminLogout(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	admin := testutil.SeedAdmin(t, db, "admin", "admin123")
	token := testutil.AdminToken(t, admin.AdminID)

	t.Run("with admin token", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/logout", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Logged out", body["message"])
	})

	t.Run("account token lacks the admin claim", func(t *testing.T) {
		plan := testutil.SeedPlan(t, db, "Basic", 9.99, 1)
		acc := testutil.SeedAccount(t, db, "user@example.com", "secret123", plan.SubscriptionID)
		userToken := testutil.AccountToken(t, acc.AccountID)

		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/logout", userToken, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Admin access required", body["error"])
	})

	t.Run("missing token", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, "/api/admin/logout", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Token is missing", body["error"])
	})
}
