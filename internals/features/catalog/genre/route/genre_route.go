package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/genre/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func GenreUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGenreController(db)

	api.Get("/content/:id/genres", ctrl.GetContentGenres)
}

func GenreAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGenreController(db)

	genres := admin.Group("/genres")
	genres.Get("/", authmw.AdminAuth(), ctrl.ListGenres)
	genres.Post("/", authmw.AdminAuth(), ctrl.CreateGenre)
	genres.Put("/:id", authmw.AdminAuth(), ctrl.UpdateGenre)
	genres.Delete("/:id", authmw.AdminAuth(), ctrl.DeleteGenre)

	admin.Post("/content/:id/genres/:genreId", authmw.AdminAuth(), ctrl.LinkGenre)
	admin.Delete("/content/:id/genres/:genreId", authmw.AdminAuth(), ctrl.UnlinkGenre)
}
