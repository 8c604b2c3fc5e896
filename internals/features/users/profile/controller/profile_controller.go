package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/users/profile/dto"
	"streamku_backend/internals/features/users/profile/model"
	"streamku_backend/internals/features/users/profile/repository"
	helper "streamku_backend/internals/helpers"
	authmw "streamku_backend/internals/middlewares/auth"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 🟢 GET /api/profiles
func (ctrl *ProfileController) GetProfiles(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var profiles []model.ProfileModel
	if err := ctrl.DB.Where("account_id = ?", accountID).Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToProfileResponseList(profiles))
}

// 🟢 POST /api/profiles
func (ctrl *ProfileController) CreateProfile(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name and age_rating_pref required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name and age_rating_pref required")
	}

	// Cek limit profil vs max_profiles paket. Read-then-write tanpa lock:
	// dua request paralel di ambang batas bisa sama-sama lolos (lihat DESIGN.md).
	var limit struct {
		MaxProfiles     *int
		CurrentProfiles int64
	}
	err := ctrl.DB.Table("accounts a").
		Select("s.max_profiles AS max_profiles, COUNT(p.profile_id) AS current_profiles").
		Joins("LEFT JOIN subscriptions s ON a.subscription_id = s.subscription_id").
		Joins("LEFT JOIN profiles p ON p.account_id = a.account_id").
		Where("a.account_id = ?", accountID).
		Group("s.max_profiles").
		Scan(&limit).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if limit.MaxProfiles != nil && limit.CurrentProfiles >= int64(*limit.MaxProfiles) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Profile limit reached")
	}

	profile := model.ProfileModel{
		AccountID:     accountID,
		Name:          req.Name,
		AgeRatingPref: req.AgeRatingPref,
	}
	if err := ctrl.DB.Create(&profile).Error; err != nil {
		log.Printf("[ERROR] create profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, dto.ToProfileResponse(&profile))
}

// 🟢 GET /api/profiles/:id
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)
	profileID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	profile, err := repository.FindOwned(ctrl.DB, profileID, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToProfileResponse(profile))
}

// 🟡 PUT /api/profiles/:id — partial
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)
	profileID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	if _, err := repository.FindOwned(ctrl.DB, profileID, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.AgeRatingPref != nil && *req.AgeRatingPref != "" {
		updates["age_rating_pref"] = *req.AgeRatingPref
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.ProfileModel{}).
			Where("profile_id = ?", profileID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Profile updated")
}

// 🔴 DELETE /api/profiles/:id — cascade menghapus wishlist & history profil
func (ctrl *ProfileController) DeleteProfile(c *fiber.Ctx) error {
	accountID := authmw.CurrentAccountID(c)
	profileID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	res := ctrl.DB.Where("profile_id = ? AND account_id = ?", profileID, accountID).
		Delete(&model.ProfileModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Profile deleted")
}
