package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/admins/accounts/dto"
	"streamku_backend/internals/features/users/account/model"
	helper "streamku_backend/internals/helpers"
)

type AdminAccountController struct {
	DB *gorm.DB
}

func NewAdminAccountController(db *gorm.DB) *AdminAccountController {
	return &AdminAccountController{DB: db}
}

func toAdminAccountResponse(m model.AccountModel) dto.AdminAccountResponse {
	return dto.AdminAccountResponse{
		AccountID:      m.AccountID,
		Email:          m.Email,
		SubscriptionID: m.SubscriptionID,
		CreatedAt:      m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🟢 GET /api/admin/accounts
func (ctrl *AdminAccountController) ListAccounts(c *fiber.Ctx) error {
	var accounts []model.AccountModel
	if err := ctrl.DB.Order("account_id").Find(&accounts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.AdminAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAdminAccountResponse(a))
	}
	return helper.JsonOK(c, out)
}

// 🟢 GET /api/admin/accounts/:id
func (ctrl *AdminAccountController) GetAccount(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	var account model.AccountModel
	if err := ctrl.DB.First(&account, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, toAdminAccountResponse(account))
}

// 🟡 PUT /api/admin/accounts/:id
func (ctrl *AdminAccountController) UpdateAccount(c *fiber.Ctx) error {
	accountID, _ := c.ParamsInt("id")

	var body dto.AdminAccountUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.SubscriptionID != nil {
		updates["subscription_id"] = *body.SubscriptionID
	}

	if len(updates) > 0 {
		err := ctrl.DB.Model(&model.AccountModel{}).
			Where("account_id = ?", accountID).
			Updates(updates).Error
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Account updated")
}

// 🔴 DELETE /api/admin/accounts/:id
func (ctrl *AdminAccountController) DeleteAccount(c *fiber.Ctx) error {
	accountID, _ := c.ParamsInt("id")

	res := ctrl.DB.Where("account_id = ?", accountID).Delete(&model.AccountModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Account deleted")
}
