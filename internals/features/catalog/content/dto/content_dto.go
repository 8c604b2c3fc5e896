package dto

import (
	"streamku_backend/internals/features/catalog/content/model"
)

// 🔹 Request buat konten baru
type ContentCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
	ReleaseYear int    `json:"release_year" validate:"required"`
}

// 🔹 Update konten: partial; type sengaja tidak bisa diganti
type ContentUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ReleaseYear *int    `json:"release_year"`
}

// 🔹 Response konten lengkap (browsing & detail)
type ContentResponse struct {
	ContentID   int    `json:"content_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
}

// 🔹 Response ringkas untuk listing admin
type ContentSummaryResponse struct {
	ContentID int    `json:"content_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
}

func ToContentResponse(m *model.ContentModel) *ContentResponse {
	return &ContentResponse{
		ContentID:   m.ContentID,
		Title:       m.Title,
		Type:        m.Type,
		Description: m.Description,
		ReleaseYear: m.ReleaseYear,
	}
}

func ToContentResponseList(models []model.ContentModel) []ContentResponse {
	result := make([]ContentResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToContentResponse(&models[i]))
	}
	return result
}

func ToContentSummaryList(models []model.ContentModel) []ContentSummaryResponse {
	result := make([]ContentSummaryResponse, 0, len(models))
	for i := range models {
		result = append(result, ContentSummaryResponse{
			ContentID: models[i].ContentID,
			Title:     models[i].Title,
			Type:      models[i].Type,
		})
	}
	return result
}
