package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/series/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func SeriesUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSeriesController(db)

	api.Get("/content/:id/seasons", ctrl.GetContentSeasons)
	api.Get("/seasons/:id/episodes", ctrl.GetSeasonEpisodes)
	api.Get("/episodes/:id", ctrl.GetEpisode)
}

func SeriesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSeriesController(db)

	admin.Post("/content/:id/seasons", authmw.AdminAuth(), ctrl.CreateSeason)
	admin.Put("/seasons/:id", authmw.AdminAuth(), ctrl.UpdateSeason)
	admin.Delete("/seasons/:id", authmw.AdminAuth(), ctrl.DeleteSeason)
	admin.Post("/seasons/:id/episodes", authmw.AdminAuth(), ctrl.CreateEpisode)
	admin.Put("/episodes/:id", authmw.AdminAuth(), ctrl.UpdateEpisode)
	admin.Delete("/episodes/:id", authmw.AdminAuth(), ctrl.DeleteEpisode)
}
