package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"streamku_backend/internals/features/activity/wishlist/model"
	profileRepo "streamku_backend/internals/features/users/profile/repository"
	helper "streamku_backend/internals/helpers"
	authmw "streamku_backend/internals/middlewares/auth"
)

type WishlistController struct {
	DB *gorm.DB
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{DB: db}
}

// ensureProfile memverifikasi profil milik akun pemanggil sebelum baca/tulis.
// Gagal → 404 seragam, tanpa membedakan "tidak ada" vs "punya akun lain".
// Respons sudah ditulis saat ok == false; handler cukup berhenti.
func (ctrl *WishlistController) ensureProfile(c *fiber.Ctx) (int, bool) {
	accountID := authmw.CurrentAccountID(c)
	profileID, err := c.ParamsInt("id")
	if err != nil {
		_ = helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		return 0, false
	}

	if _, err := profileRepo.FindOwned(ctrl.DB, profileID, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		} else {
			_ = helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return 0, false
	}
	return profileID, true
}

// 🟢 GET /api/profiles/:id/wishlist
func (ctrl *WishlistController) GetWishlist(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	var items []struct {
		ContentID int    `json:"content_id"`
		Title     string `json:"title"`
	}
	err := ctrl.DB.Table("content c").
		Select("c.content_id, c.title").
		Joins("JOIN wishlist w ON c.content_id = w.content_id").
		Where("w.profile_id = ?", profileID).
		Scan(&items).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []struct {
			ContentID int    `json:"content_id"`
			Title     string `json:"title"`
		}{}
	}

	return helper.JsonOK(c, items)
}

// 🟢 POST /api/profiles/:id/wishlist/:contentId — idempoten, conflict diabaikan
func (ctrl *WishlistController) AddToWishlist(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	entry := model.WishlistModel{ProfileID: profileID, ContentID: contentID}
	if err := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusCreated, "Added to wishlist")
}

// 🔴 DELETE /api/profiles/:id/wishlist/:contentId — delete tanpa syarat
func (ctrl *WishlistController) RemoveFromWishlist(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	if err := ctrl.DB.
		Where("profile_id = ? AND content_id = ?", profileID, contentID).
		Delete(&model.WishlistModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Removed from wishlist")
}
