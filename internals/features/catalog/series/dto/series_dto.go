package dto

import (
	"streamku_backend/internals/features/catalog/series/model"
)

// 🔹 Request season; pointer supaya season 0 (specials) tetap valid
type SeasonRequest struct {
	SeasonNumber *int `json:"season_number" validate:"required"`
}

// 🔹 Request buat episode
type EpisodeCreateRequest struct {
	Title         string `json:"title" validate:"required"`
	EpisodeNumber *int   `json:"episode_number" validate:"required"`
}

// 🔹 Update episode: partial
type EpisodeUpdateRequest struct {
	Title         *string `json:"title"`
	EpisodeNumber *int    `json:"episode_number"`
}

// 🔹 Response season (list per content, urut nomor)
type SeasonResponse struct {
	SeasonID     int `json:"season_id"`
	SeasonNumber int `json:"season_number"`
}

// 🔹 Response episode
type EpisodeResponse struct {
	EpisodeID     int    `json:"episode_id"`
	Title         string `json:"title"`
	EpisodeNumber int    `json:"episode_number"`
}

func ToSeasonResponseList(models []model.SeasonModel) []SeasonResponse {
	result := make([]SeasonResponse, 0, len(models))
	for i := range models {
		result = append(result, SeasonResponse{
			SeasonID:     models[i].SeasonID,
			SeasonNumber: models[i].SeasonNumber,
		})
	}
	return result
}

func ToEpisodeResponse(m *model.EpisodeModel) *EpisodeResponse {
	return &EpisodeResponse{
		EpisodeID:     m.EpisodeID,
		Title:         m.Title,
		EpisodeNumber: m.EpisodeNumber,
	}
}

func ToEpisodeResponseList(models []model.EpisodeModel) []EpisodeResponse {
	result := make([]EpisodeResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEpisodeResponse(&models[i]))
	}
	return result
}
