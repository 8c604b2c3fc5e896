package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/users/auth/dto"
	"streamku_backend/internals/features/users/auth/service"
	subscriptionModel "streamku_backend/internals/features/subscriptions/model"
	accountDto "streamku_backend/internals/features/users/account/dto"
	accountModel "streamku_backend/internals/features/users/account/model"
	helper "streamku_backend/internals/helpers"
	authmw "streamku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password required")
	}

	if req.Email == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password required")
	}
	if req.SubscriptionID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "subscription_id required")
	}

	// Email harus unik; duplikat sengaja 400, bukan 409.
	var existing accountModel.AccountModel
	if err := ctrl.DB.Select("account_id").Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var sub subscriptionModel.SubscriptionModel
	if err := ctrl.DB.Select("subscription_id").First(&sub, req.SubscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	account := accountModel.AccountModel{
		Email:          req.Email,
		PasswordHash:   hashed,
		SubscriptionID: &req.SubscriptionID,
	}
	if err := ctrl.DB.Create(&account).Error; err != nil {
		log.Printf("[ERROR] register insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := service.GenerateAccountToken(account.AccountID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, dto.AuthResponse{
		AccountID:      account.AccountID,
		Email:          account.Email,
		SubscriptionID: account.SubscriptionID,
		Token:          token,
	})
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password required")
	}

	var account accountModel.AccountModel
	err := ctrl.DB.Where("email = ?", req.Email).First(&account).Error
	// Pesan identik untuk akun tak ada vs password salah.
	if err != nil || !service.CheckPassword(req.Password, account.PasswordHash) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.GenerateAccountToken(account.AccountID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.AuthResponse{
		AccountID:      account.AccountID,
		Email:          account.Email,
		SubscriptionID: account.SubscriptionID,
		Token:          token,
	})
}

// 🟢 POST /api/auth/logout — token stateless, tidak ada yang perlu dicabut.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonMessage(c, fiber.StatusOK, "Logged out")
}

// 🟢 GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var account accountModel.AccountModel
	if err := ctrl.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, accountDto.ToAccountResponse(&account))
}
