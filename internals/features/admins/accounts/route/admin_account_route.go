package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/admins/accounts/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func AdminAccountRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminAccountController(db)

	accounts := admin.Group("/accounts")
	accounts.Get("/", authmw.AdminAuth(), ctrl.ListAccounts)
	accounts.Get("/:id", authmw.AdminAuth(), ctrl.GetAccount)
	accounts.Put("/:id", authmw.AdminAuth(), ctrl.UpdateAccount)
	accounts.Delete("/:id", authmw.AdminAuth(), ctrl.DeleteAccount)
}
