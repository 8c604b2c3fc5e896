package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"streamku_backend/internals/features/catalog/series/dto"
	"streamku_backend/internals/features/catalog/series/model"
	helper "streamku_backend/internals/helpers"
)

type SeriesController struct {
	DB *gorm.DB
}

func NewSeriesController(db *gorm.DB) *SeriesController {
	return &SeriesController{DB: db}
}

// 🟢 GET /api/content/:id/seasons — urut season_number
func (ctrl *SeriesController) GetContentSeasons(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var seasons []model.SeasonModel
	if err := ctrl.DB.Where("content_id = ?", contentID).
		Order("season_number").
		Find(&seasons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToSeasonResponseList(seasons))
}

// 🟢 GET /api/seasons/:id/episodes — urut episode_number
func (ctrl *SeriesController) GetSeasonEpisodes(c *fiber.Ctx) error {
	seasonID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Season not found")
	}

	var episodes []model.EpisodeModel
	if err := ctrl.DB.Where("season_id = ?", seasonID).
		Order("episode_number").
		Find(&episodes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToEpisodeResponseList(episodes))
}

// 🟢 GET /api/episodes/:id
func (ctrl *SeriesController) GetEpisode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Episode not found")
	}

	var episode model.EpisodeModel
	if err := ctrl.DB.First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Episode not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.ToEpisodeResponse(&episode))
}

// 🟢 POST /api/admin/content/:id/seasons
func (ctrl *SeriesController) CreateSeason(c *fiber.Ctx) error {
	contentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var req dto.SeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "season_number required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "season_number required")
	}

	season := model.SeasonModel{
		ContentID:    contentID,
		SeasonNumber: *req.SeasonNumber,
	}
	if err := ctrl.DB.Create(&season).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"season_id": season.SeasonID})
}

// 🟡 PUT /api/admin/seasons/:id
func (ctrl *SeriesController) UpdateSeason(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Season not found")
	}

	var req dto.SeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "season_number required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "season_number required")
	}

	if err := ctrl.DB.Model(&model.SeasonModel{}).
		Where("season_id = ?", id).
		Update("season_number", *req.SeasonNumber).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Season updated")
}

// 🔴 DELETE /api/admin/seasons/:id — cascade ke episodes
func (ctrl *SeriesController) DeleteSeason(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Season not found")
	}

	res := ctrl.DB.Delete(&model.SeasonModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Season not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Season deleted")
}

// 🟢 POST /api/admin/seasons/:id/episodes
func (ctrl *SeriesController) CreateEpisode(c *fiber.Ctx) error {
	seasonID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Season not found")
	}

	var req dto.EpisodeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title and episode_number required")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title and episode_number required")
	}

	episode := model.EpisodeModel{
		SeasonID:      seasonID,
		Title:         req.Title,
		EpisodeNumber: *req.EpisodeNumber,
	}
	if err := ctrl.DB.Create(&episode).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"episode_id": episode.EpisodeID})
}

// 🟡 PUT /api/admin/episodes/:id — partial
func (ctrl *SeriesController) UpdateEpisode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Episode not found")
	}

	var req dto.EpisodeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.EpisodeNumber != nil {
		updates["episode_number"] = *req.EpisodeNumber
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.EpisodeModel{}).
			Where("episode_id = ?", id).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Episode updated")
}

// 🔴 DELETE /api/admin/episodes/:id
func (ctrl *SeriesController) DeleteEpisode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Episode not found")
	}

	res := ctrl.DB.Delete(&model.EpisodeModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Episode not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Episode deleted")
}
