package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionModel "streamku_backend/internals/features/subscriptions/model"
	"streamku_backend/internals/features/users/account/dto"
	"streamku_backend/internals/features/users/account/model"
	authService "streamku_backend/internals/features/users/auth/service"
	helper "streamku_backend/internals/helpers"
	authmw "streamku_backend/internals/middlewares/auth"
)

type AccountController struct {
	DB *gorm.DB
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db}
}

// 🟢 GET /api/account
func (ctrl *AccountController) GetAccount(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var account model.AccountModel
	if err := ctrl.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToAccountResponse(&account))
}

// 🟡 PUT /api/account — partial; password di-hash ulang sebelum disimpan
func (ctrl *AccountController) UpdateAccount(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var req dto.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := authService.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		updates["password_hash"] = hashed
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.AccountModel{}).
			Where("account_id = ?", accountID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Account updated")
}

// 🟢 GET /api/account/subscription
func (ctrl *AccountController) GetSubscription(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var sub subscriptionModel.SubscriptionModel
	err := ctrl.DB.
		Joins("JOIN accounts a ON a.subscription_id = subscriptions.subscription_id").
		Where("a.account_id = ?", accountID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No subscription found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{
		"subscription_id": sub.SubscriptionID,
		"name":            sub.Name,
		"monthly_price":   sub.MonthlyPrice,
		"max_profiles":    sub.MaxProfiles,
	})
}

// 🟡 PUT /api/account/subscription
func (ctrl *AccountController) UpdateSubscription(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var req dto.SubscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subscription_id required")
	}
	if req.SubscriptionID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "subscription_id required")
	}

	var sub subscriptionModel.SubscriptionModel
	if err := ctrl.DB.Select("subscription_id").First(&sub, req.SubscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Model(&model.AccountModel{}).
		Where("account_id = ?", accountID).
		Update("subscription_id", req.SubscriptionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Subscription updated")
}
