package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"streamku_backend/internals/features/catalog/genre/dto"
	"streamku_backend/internals/features/catalog/genre/model"
	helper "streamku_backend/internals/helpers"
)

type GenreController struct {
	DB *gorm.DB
}

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{DB: db}
}

// 🟢 GET /api/content/:id/genres — publik
func (ctrl *GenreController) GetContentGenres(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var genres []model.GenreModel
	if err := ctrl.DB.
		Joins("JOIN content_genres cg ON genres.genre_id = cg.genre_id").
		Where("cg.content_id = ?", contentID).
		Find(&genres).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToGenreResponseList(genres))
}

// 🟢 GET /api/admin/genres
func (ctrl *GenreController) ListGenres(c *fiber.Ctx) error {
	var genres []model.GenreModel
	if err := ctrl.DB.Find(&genres).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.ToGenreResponseList(genres))
}

// 🟢 POST /api/admin/genres
func (ctrl *GenreController) CreateGenre(c *fiber.Ctx) error {
	var req dto.GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name required")
	}

	genre := model.GenreModel{Name: req.Name}
	if err := ctrl.DB.Create(&genre).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"genre_id": genre.GenreID})
}

// 🟡 PUT /api/admin/genres/:id
func (ctrl *GenreController) UpdateGenre(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}

	var req dto.GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "name required")
	}

	if err := ctrl.DB.Model(&model.GenreModel{}).
		Where("genre_id = ?", id).
		Update("name", req.Name).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Genre updated")
}

// 🔴 DELETE /api/admin/genres/:id
func (ctrl *GenreController) DeleteGenre(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}

	res := ctrl.DB.Delete(&model.GenreModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Genre deleted")
}

// 🟢 POST /api/admin/content/:id/genres/:genreId — idempoten (conflict diabaikan)
func (ctrl *GenreController) LinkGenre(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}
	genreID, err := c.ParamsInt("genreId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}

	link := model.ContentGenreModel{ContentID: contentID, GenreID: genreID}
	if err := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusCreated, "Genre linked to content")
}

// 🔴 DELETE /api/admin/content/:id/genres/:genreId — delete tanpa syarat
func (ctrl *GenreController) UnlinkGenre(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}
	genreID, err := c.ParamsInt("genreId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}

	if err := ctrl.DB.
		Where("content_id = ? AND genre_id = ?", contentID, genreID).
		Delete(&model.ContentGenreModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Genre unlinked from content")
}
