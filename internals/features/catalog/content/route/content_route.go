package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/content/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func ContentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContentController(db)

	api.Get("/content", ctrl.BrowseContent)
	api.Get("/content/:id", ctrl.GetContent)
}

func ContentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContentController(db)

	content := admin.Group("/content")
	content.Get("/", authmw.AdminAuth(), ctrl.AdminListContent)
	content.Post("/", authmw.AdminAuth(), ctrl.CreateContent)
	content.Get("/:id", authmw.AdminAuth(), ctrl.AdminGetContent)
	content.Put("/:id", authmw.AdminAuth(), ctrl.UpdateContent)
	content.Delete("/:id", authmw.AdminAuth(), ctrl.DeleteContent)
}
