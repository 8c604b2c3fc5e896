package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/media/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func MediaUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMediaController(db)

	api.Get("/content/:id/media", ctrl.GetContentMedia)
}

func MediaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMediaController(db)

	admin.Post("/content/:id/media", authmw.AdminAuth(), ctrl.CreateMediaFile)
	admin.Delete("/media/:id", authmw.AdminAuth(), ctrl.DeleteMediaFile)
}
