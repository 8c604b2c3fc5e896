package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/subscriptions/controller"
	authmw "streamku_backend/internals/middlewares/auth"
)

func SubscriptionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubscriptionController(db)

	api.Get("/subscriptions", ctrl.ListSubscriptions)
}

func SubscriptionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubscriptionController(db)

	subs := admin.Group("/subscriptions")
	subs.Get("/", authmw.AdminAuth(), ctrl.AdminListSubscriptions)
	subs.Post("/", authmw.AdminAuth(), ctrl.CreateSubscription)
	subs.Get("/:id", authmw.AdminAuth(), ctrl.GetSubscription)
	subs.Put("/:id", authmw.AdminAuth(), ctrl.UpdateSubscription)
	subs.Delete("/:id", authmw.AdminAuth(), ctrl.DeleteSubscription)
}
