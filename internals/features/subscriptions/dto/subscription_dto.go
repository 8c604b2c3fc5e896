package dto

import (
	"streamku_backend/internals/features/subscriptions/model"
)

// 🔹 Request buat paket baru. Pointer supaya 0 tetap dianggap terisi
// (max_profiles 0 sah, hanya nil yang ditolak).
type SubscriptionCreateRequest struct {
	Name         string   `json:"name" validate:"required"`
	MaxProfiles  *int     `json:"max_profiles" validate:"required"`
	MonthlyPrice *float64 `json:"monthly_price" validate:"required"`
}

// 🔹 Update paket: partial
type SubscriptionUpdateRequest struct {
	Name         *string  `json:"name"`
	MaxProfiles  *int     `json:"max_profiles"`
	MonthlyPrice *float64 `json:"monthly_price"`
}

// 🔹 Response paket
type SubscriptionResponse struct {
	SubscriptionID int     `json:"subscription_id"`
	Name           string  `json:"name"`
	MonthlyPrice   float64 `json:"monthly_price"`
	MaxProfiles    int     `json:"max_profiles"`
}

func ToSubscriptionResponse(m *model.SubscriptionModel) *SubscriptionResponse {
	return &SubscriptionResponse{
		SubscriptionID: m.SubscriptionID,
		Name:           m.Name,
		MonthlyPrice:   m.MonthlyPrice,
		MaxProfiles:    m.MaxProfiles,
	}
}

func ToSubscriptionResponseList(models []model.SubscriptionModel) []SubscriptionResponse {
	result := make([]SubscriptionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToSubscriptionResponse(&models[i]))
	}
	return result
}
