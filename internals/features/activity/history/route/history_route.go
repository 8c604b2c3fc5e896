package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/activity/history/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func HistoryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHistoryController(db)

	api.Get("/profiles/:id/history", authmw.AccountAuth(), ctrl.GetHistory)
	api.Get("/profiles/:id/history/:contentId", authmw.AccountAuth(), ctrl.GetHistoryItem)
	api.Put("/profiles/:id/history/:contentId", authmw.AccountAuth(), ctrl.UpdateHistory)
	api.Delete("/profiles/:id/history/:contentId", authmw.AccountAuth(), ctrl.DeleteHistory)
}
