package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/media/dto"
	"streamku_backend/internals/features/catalog/media/model"
	helper "streamku_backend/internals/helpers"
)

type MediaController struct {
	DB *gorm.DB
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{DB: db}
}

// 🟢 GET /api/content/:id/media — publik
func (ctrl *MediaController) GetContentMedia(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var media []model.MediaFileModel
	if err := ctrl.DB.Where("content_id = ?", contentID).Find(&media).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToMediaFileResponseList(media))
}

// 🟢 POST /api/admin/content/:id/media
// Konten tidak dicek dulu; FK violation muncul sebagai 500 apa adanya.
func (ctrl *MediaController) CreateMediaFile(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var req dto.MediaFileCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "resolution, language, and file_path required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "resolution, language, and file_path required")
	}

	media := model.MediaFileModel{
		ContentID:  contentID,
		Resolution: req.Resolution,
		Language:   req.Language,
		FilePath:   req.FilePath,
	}
	if err := ctrl.DB.Create(&media).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"media_id": media.MediaID})
}

// 🔴 DELETE /api/admin/media/:id
func (ctrl *MediaController) DeleteMediaFile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Media file not found")
	}

	res := ctrl.DB.Delete(&model.MediaFileModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Media file not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Media file deleted")
}
