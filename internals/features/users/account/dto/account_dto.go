package dto

import (
	"streamku_backend/internals/features/users/account/model"
)

// 🔹 Response ringkasan akun (tanpa hash password)
type AccountResponse struct {
	AccountID      int    `json:"account_id"`
	Email          string `json:"email"`
	SubscriptionID *int   `json:"subscription_id"`
	CreatedAt      string `json:"created_at"`
}

// 🔹 Update akun: partial, field nil tidak disentuh
type AccountUpdateRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// 🔹 Ganti paket langganan
type SubscriptionUpdateRequest struct {
	SubscriptionID int `json:"subscription_id"`
}

func ToAccountResponse(m *model.AccountModel) *AccountResponse {
	return &AccountResponse{
		AccountID:      m.AccountID,
		Email:          m.Email,
		SubscriptionID: m.SubscriptionID,
		CreatedAt:      m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
