package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/admins/auth/dto"
	"streamku_backend/internals/features/admins/auth/model"
	authService "streamku_backend/internals/features/users/auth/service"
	helper "streamku_backend/internals/helpers"
)

type AdminAuthController struct {
	DB *gorm.DB
}

func NewAdminAuthController(db *gorm.DB) *AdminAuthController {
	return &AdminAuthController{DB: db}
}

// 🟢 POST /api/admin/login
func (ctrl *AdminAuthController) Login(c *fiber.Ctx) error {
	var body dto.AdminLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password required")
	}
	if body.Username == "" || body.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password required")
	}

	var admin model.AdminModel
	err := ctrl.DB.Where("username = ?", body.Username).First(&admin).Error
	// Pesan identik untuk username tak dikenal vs password salah.
	if err != nil || !authService.CheckPassword(body.Password, admin.PasswordHash) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := authService.GenerateAdminToken(admin.AdminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.AdminLoginResponse{
		AdminID: admin.AdminID,
		Token:   token,
	})
}

// 🟢 POST /api/admin/logout — token stateless, tidak ada yang perlu dicabut.
func (ctrl *AdminAuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonMessage(c, fiber.StatusOK, "Logged out")
}
