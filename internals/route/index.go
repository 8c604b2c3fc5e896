package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	historyRoute "streamku_backend/internals/features/activity/history/route"
	wishlistRoute "streamku_backend/internals/features/activity/wishlist/route"
	adminAccountRoute "streamku_backend/internals/features/admins/accounts/route"
	adminAuthRoute "streamku_backend/internals/features/admins/auth/route"
	contentRoute "streamku_backend/internals/features/catalog/content/route"
	genreRoute "streamku_backend/internals/features/catalog/genre/route"
	mediaRoute "streamku_backend/internals/features/catalog/media/route"
	seriesRoute "streamku_backend/internals/features/catalog/series/route"
	subscriptionRoute "streamku_backend/internals/features/subscriptions/route"
	accountRoute "streamku_backend/internals/features/users/account/route"
	authRoute "streamku_backend/internals/features/users/auth/route"
	profileRoute "streamku_backend/internals/features/users/profile/route"
)

// SetupRoutes mounts every feature under /api. Guards are attached per
// route inside each registrar, so public and protected paths can share
// a prefix without leaking the guard onto the public ones.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Account-facing surface
	authRoute.AuthRoutes(api, db)
	accountRoute.AccountRoutes(api, db)
	profileRoute.ProfileRoutes(api, db)
	subscriptionRoute.SubscriptionUserRoutes(api, db)
	contentRoute.ContentUserRoutes(api, db)
	genreRoute.GenreUserRoutes(api, db)
	seriesRoute.SeriesUserRoutes(api, db)
	mediaRoute.MediaUserRoutes(api, db)
	wishlistRoute.WishlistRoutes(api, db)
	historyRoute.HistoryRoutes(api, db)

	// Admin surface
	admin := api.Group("/admin")
	adminAuthRoute.AdminAuthRoutes(admin, db)
	adminAccountRoute.AdminAccountRoutes(admin, db)
	subscriptionRoute.SubscriptionAdminRoutes(admin, db)
	contentRoute.ContentAdminRoutes(admin, db)
	genreRoute.GenreAdminRoutes(admin, db)
	seriesRoute.SeriesAdminRoutes(admin, db)
	mediaRoute.MediaAdminRoutes(admin, db)
}
