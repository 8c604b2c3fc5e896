package dto

import (
	"streamku_backend/internals/features/catalog/genre/model"
)

// 🔹 Request buat/rename genre
type GenreRequest struct {
	Name string `json:"name" validate:"required"`
}

// 🔹 Response genre
type GenreResponse struct {
	GenreID int    `json:"genre_id"`
	Name    string `json:"name"`
}

func ToGenreResponse(m *model.GenreModel) *GenreResponse {
	return &GenreResponse{GenreID: m.GenreID, Name: m.Name}
}

func ToGenreResponseList(models []model.GenreModel) []GenreResponse {
	result := make([]GenreResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToGenreResponse(&models[i]))
	}
	return result
}
