package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/users/account/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func AccountRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAccountController(db)

	account := api.Group("/account", authmw.AccountAuth())
	account.Get("/", ctrl.GetAccount)
	account.Put("/", ctrl.UpdateAccount)
	account.Get("/subscription", ctrl.GetSubscription)
	account.Put("/subscription", ctrl.UpdateSubscription)
}
