package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wishlistModel "streamku_backend/internals/features/activity/wishlist/model"
	contentModel "streamku_backend/internals/features/catalog/content/model"
	"streamku_backend/internals/testutil"
)

func TestWishlist(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, db)
	plan := testutil.SeedPlan(t, db, "Premium", 19.99, 4)
	acc := testutil.SeedAccount(t, db, "alice@example.com", "secret123", plan.SubscriptionID)
	other := testutil.SeedAccount(t, db, "bob@example.com", "secret123", plan.SubscriptionID)
	token := testutil.AccountToken(t, acc.AccountID)

	profile := testutil.SeedProfile(t, db, acc.AccountID, "Mine")
	foreign := testutil.SeedProfile(t, db, other.AccountID, "Theirs")
	movie := testutil.SeedContent(t, db, "The Space Odyssey", contentModel.TypeMovie, 2023)

	wishlistURL := func(profileID int) string {
		return fmt.Sprintf("/api/profiles/%d/wishlist", profileID)
	}
	itemURL := func(profileID, contentID int) string {
		return fmt.Sprintf("/api/profiles/%d/wishlist/%d", profileID, contentID)
	}

	t.Run("empty wishlist is an empty array", func(t *testing.T) {
		resp, list := testutil.DoJSONList(t, app, http.MethodGet, wishlistURL(profile.ProfileID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, list)
	})

	t.Run("add and list", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodPost, itemURL(profile.ProfileID, movie.ContentID), token, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Added to wishlist", body["message"])

		resp, list := testutil.DoJSONList(t, app, http.MethodGet, wishlistURL(profile.ProfileID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 1)
		assert.Equal(t, "The Space Odyssey", list[0]["title"])
	})

	t.Run("adding twice stays a single row", func(t *testing.T) {
		resp, _ := testutil.DoJSON(t, app, http.MethodPost, itemURL(profile.ProfileID, movie.ContentID), token, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var count int64
		db.Model(&wishlistModel.WishlistModel{}).
			Where("profile_id = ?", profile.ProfileID).
			Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("foreign profile is invisible", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodGet, wishlistURL(foreign.ProfileID), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Profile not found", body["error"])

		resp, body = testutil.DoJSON(t, app, http.MethodPost, itemURL(foreign.ProfileID, movie.ContentID), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Profile not found", body["error"])

		resp, body = testutil.DoJSON(t, app, http.MethodDelete, itemURL(foreign.ProfileID, movie.ContentID), token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Profile not found", body["error"])

		var count int64
		db.Model(&wishlistModel.WishlistModel{}).
			Where("profile_id = ?", foreign.ProfileID).
			Count(&count)
		assert.Zero(t, count)
	})

	t.Run("remove", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, itemURL(profile.ProfileID, movie.ContentID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Removed from wishlist", body["message"])

		resp, list := testutil.DoJSONList(t, app, http.MethodGet, wishlistURL(profile.ProfileID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, list)
	})

	t.Run("removing an absent entry still succeeds", func(t *testing.T) {
		resp, body := testutil.DoJSON(t, app, http.MethodDelete, itemURL(profile.ProfileID, movie.ContentID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Removed from wishlist", body["message"])
	})
}
