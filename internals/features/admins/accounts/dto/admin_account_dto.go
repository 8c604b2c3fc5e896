package dto

// 🔹 Update akun oleh admin: partial, field nil tidak disentuh
type AdminAccountUpdateRequest struct {
	Email          *string `json:"email"`
	SubscriptionID *int    `json:"subscription_id"`
}

// 🔹 Response akun untuk listing admin
type AdminAccountResponse struct {
	AccountID      int    `json:"account_id"`
	Email          string `json:"email"`
	SubscriptionID *int   `json:"subscription_id"`
	CreatedAt      string `json:"created_at"`
}
