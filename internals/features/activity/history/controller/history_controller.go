package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"streamku_backend/internals/features/activity/history/dto"
	"streamku_backend/internals/features/activity/history/model"
	profileRepo "streamku_backend/internals/features/users/profile/repository"
	helper "streamku_backend/internals/helpers"
	authmw "streamku_backend/internals/middlewares/auth"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{DB: db}
}

// Respons sudah ditulis saat ok == false; handler cukup berhenti.
func (ctrl *HistoryController) ensureProfile(c *fiber.Ctx) (int, bool) {
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

// 🟢 GET /api/profiles/:id/history
func (ctrl *HistoryController) GetHistory(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	var entries []model.ViewingHistoryModel
	if err := ctrl.DB.Where("profile_id = ?", profileID).Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result := make([]dto.HistoryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, dto.HistoryResponse{
			ContentID:     entries[i].ContentID,
			LastTimestamp: entries[i].LastTimestamp,
		})
	}
	return helper.JsonOK(c, result)
}

// 🟢 GET /api/profiles/:id/history/:contentId
func (ctrl *HistoryController) GetHistoryItem(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "History not found")
	}

	var entry model.ViewingHistoryModel
	if err := ctrl.DB.
		Where("profile_id = ? AND content_id = ?", profileID, contentID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "History not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.HistoryResponse{
		ContentID:     entry.ContentID,
		LastTimestamp: entry.LastTimestamp,
	})
}

// 🟡 PUT /api/profiles/:id/history/:contentId
// Upsert last-write-wins: tidak ada cek monotonicity, nilai lama selalu ditimpa.
func (ctrl *HistoryController) UpdateHistory(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "History not found")
	}

	var req dto.HistoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "last_timestamp required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "last_timestamp required")
	}

	entry := model.ViewingHistoryModel{
		ProfileID:     profileID,
		ContentID:     contentID,
		LastTimestamp: *req.LastTimestamp,
	}
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_timestamp"}),
	}).Create(&entry).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "History updated")
}

// 🔴 DELETE /api/profiles/:id/history/:contentId
func (ctrl *HistoryController) DeleteHistory(c *fiber.Ctx) error {
	profileID, ok := ctrl.ensureProfile(c)
	if !ok {
		return nil
	}

	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "History not found")
	}

	if err := ctrl.DB.
		Where("profile_id = ? AND content_id = ?", profileID, contentID).
		Delete(&model.ViewingHistoryModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "History removed")
}
