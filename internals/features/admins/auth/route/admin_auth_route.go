package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/admins/auth/controller"
	"streamku_backend/internals/middlewares"
	authmw "streamku_backend/internals/middlewares/auth"
)

func AdminAuthRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminAuthController(db)

	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	admin.Post("/logout", authmw.AdminAuth(), ctrl.Logout)
}
