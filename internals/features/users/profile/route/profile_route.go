package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/users/profile/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

// Wishlist & history menempel di bawah /profiles/:id dan didaftarkan oleh
// feature activity masing-masing; guard di sini hanya untuk route profil.
func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	profiles := api.Group("/profiles")
	profiles.Get("/", authmw.AccountAuth(), ctrl.GetProfiles)
	profiles.Post("/", authmw.AccountAuth(), ctrl.CreateProfile)
	profiles.Get("/:id", authmw.AccountAuth(), ctrl.GetProfile)
	profiles.Put("/:id", authmw.AccountAuth(), ctrl.UpdateProfile)
	profiles.Delete("/:id", authmw.AccountAuth(), ctrl.DeleteProfile)
}
