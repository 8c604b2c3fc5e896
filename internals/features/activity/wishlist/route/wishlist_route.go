package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/activity/wishlist/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func WishlistRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWishlistController(db)

	api.Get("/profiles/:id/wishlist", authmw.AccountAuth(), ctrl.GetWishlist)
	api.Post("/profiles/:id/wishlist/:contentId", authmw.AccountAuth(), ctrl.AddToWishlist)
	api.Delete("/profiles/:id/wishlist/:contentId", authmw.AccountAuth(), ctrl.RemoveFromWishlist)
}
