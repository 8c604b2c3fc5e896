package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/subscriptions/dto"
	"streamku_backend/internals/features/subscriptions/model"
	helper "streamku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

// 🟢 GET /api/subscriptions — publik, untuk halaman pricing
func (ctrl *SubscriptionController) ListSubscriptions(c *fiber.Ctx) error {
	var subs []model.SubscriptionModel
	if err := ctrl.DB.Order("subscription_id").Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.ToSubscriptionResponseList(subs))
}

// 🟢 GET /api/admin/subscriptions
func (ctrl *SubscriptionController) AdminListSubscriptions(c *fiber.Ctx) error {
	var subs []model.SubscriptionModel
	if err := ctrl.DB.Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.ToSubscriptionResponseList(subs))
}

// 🟢 POST /api/admin/subscriptions
func (ctrl *SubscriptionController) CreateSubscription(c *fiber.Ctx) error {
	var req dto.SubscriptionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name, max_profiles, and monthly_price required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name, max_profiles, and monthly_price required")
	}

	sub := model.SubscriptionModel{
		Name:         req.Name,
		MaxProfiles:  *req.MaxProfiles,
		MonthlyPrice: *req.MonthlyPrice,
	}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"subscription_id": sub.SubscriptionID})
}

// 🟢 GET /api/admin/subscriptions/:id
func (ctrl *SubscriptionController) GetSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
	}

	var sub model.SubscriptionModel
	if err := ctrl.DB.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToSubscriptionResponse(&sub))
}

// 🟡 PUT /api/admin/subscriptions/:id — partial
func (ctrl *SubscriptionController) UpdateSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
	}

	var req dto.SubscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.MaxProfiles != nil {
		updates["max_profiles"] = *req.MaxProfiles
	}
	if req.MonthlyPrice != nil {
		updates["monthly_price"] = *req.MonthlyPrice
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.SubscriptionModel{}).
			Where("subscription_id = ?", id).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Subscription plan updated")
}

// 🔴 DELETE /api/admin/subscriptions/:id — akun pemakai paket jadi SET NULL
func (ctrl *SubscriptionController) DeleteSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
	}

	res := ctrl.DB.Delete(&model.SubscriptionModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Subscription plan deleted")
}
