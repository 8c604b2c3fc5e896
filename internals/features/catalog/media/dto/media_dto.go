package dto

import (
	"streamku_backend/internals/features/catalog/media/model"
)

// 🔹 Request tambah file media pada konten
type MediaFileCreateRequest struct {
	Resolution string `json:"resolution" validate:"required"`
	Language   string `json:"language" validate:"required"`
	FilePath   string `json:"file_path" validate:"required"`
}

// 🔹 Response file media
type MediaFileResponse struct {
	MediaID    int    `json:"media_id"`
	Resolution string `json:"resolution"`
	Language   string `json:"language"`
	FilePath   string `json:"file_path"`
}

func ToMediaFileResponseList(models []model.MediaFileModel) []MediaFileResponse {
	result := make([]MediaFileResponse, 0, len(models))
	for i := range models {
		result = append(result, MediaFileResponse{
			MediaID:    models[i].MediaID,
			Resolution: models[i].Resolution,
			Language:   models[i].Language,
			FilePath:   models[i].FilePath,
		})
	}
	return result
}
