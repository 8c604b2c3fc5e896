package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/content/dto"
	"streamku_backend/internals/features/catalog/content/model"
	helper "streamku_backend/internals/helpers"
)

type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

// 🟢 GET /api/content?type=&genre=&year=
// Filter konjungtif; filter yang tidak dikirim tidak ikut jadi predikat.
// Tanpa pagination: seluruh hasil dikembalikan.
func (ctrl *ContentController) BrowseContent(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ContentModel{})

	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if genre := c.Query("genre"); genre != "" {
		sub := ctrl.DB.Table("content_genres cg").
			Select("cg.content_id").
			Joins("JOIN genres g ON cg.genre_id = g.genre_id").
			Where("g.name = ?", genre)
		q = q.Where("content_id IN (?)", sub)
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year must be an integer")
		}
		q = q.Where("release_year = ?", year)
	}

	var contents []model.ContentModel
	if err := q.Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToContentResponseList(contents))
}

// 🟢 GET /api/content/:id
func (ctrl *ContentController) GetContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var content model.ContentModel
	if err := ctrl.DB.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToContentResponse(&content))
}

// 🟢 GET /api/admin/content — proyeksi ringkas
func (ctrl *ContentController) AdminListContent(c *fiber.Ctx) error {
	var contents []model.ContentModel
	if err := ctrl.DB.Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.ToContentSummaryList(contents))
}

// 🟢 POST /api/admin/content
func (ctrl *ContentController) CreateContent(c *fiber.Ctx) error {
	var req dto.ContentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title, type, description, and release_year required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title, type, description, and release_year required")
	}
	if !model.ValidType(req.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "type must be Movie or Show")
	}

	content := model.ContentModel{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
	}
	if err := ctrl.DB.Create(&content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"content_id": content.ContentID})
}

// 🟢 GET /api/admin/content/:id
func (ctrl *ContentController) AdminGetContent(c *fiber.Ctx) error {
	return ctrl.GetContent(c)
}

// 🟡 PUT /api/admin/content/:id — partial
func (ctrl *ContentController) UpdateContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var req dto.ContentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.Description != nil && *req.Description != "" {
		updates["description"] = *req.Description
	}
	if req.ReleaseYear != nil {
		updates["release_year"] = *req.ReleaseYear
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.ContentModel{}).
			Where("content_id = ?", id).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Content updated")
}

// 🔴 DELETE /api/admin/content/:id — cascade ke seasons, episodes, media,
// genre links, wishlist, dan viewing history
func (ctrl *ContentController) DeleteContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	res := ctrl.DB.Delete(&model.ContentModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Content deleted")
}
