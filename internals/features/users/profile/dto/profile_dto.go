package dto

import (
	"streamku_backend/internals/features/users/profile/model"
)

// 🔹 Request buat profil baru
type ProfileRequest struct {
	Name          string `json:"name" validate:"required"`
	AgeRatingPref string `json:"age_rating_pref" validate:"required"`
}

// 🔹 Update profil: partial
type ProfileUpdateRequest struct {
	Name          *string `json:"name"`
	AgeRatingPref *string `json:"age_rating_pref"`
}

// 🔹 Response profil
type ProfileResponse struct {
	ProfileID     int    `json:"profile_id"`
	Name          string `json:"name"`
	AgeRatingPref string `json:"age_rating_pref"`
}

func ToProfileResponse(m *model.ProfileModel) *ProfileResponse {
	return &ProfileResponse{
		ProfileID:     m.ProfileID,
		Name:          m.Name,
		AgeRatingPref: m.AgeRatingPref,
	}
}

func ToProfileResponseList(models []model.ProfileModel) []ProfileResponse {
	result := make([]ProfileResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToProfileResponse(&models[i]))
	}
	return result
}
