package dto

// 🔹 Request registrasi akun baru
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	SubscriptionID int    `json:"subscription_id"`
}

// 🔹 Request login akun
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Response register/login: ringkasan akun + token 30 hari
type AuthResponse struct {
	AccountID      int    `json:"account_id"`
	Email          string `json:"email"`
	SubscriptionID *int   `json:"subscription_id"`
	Token          string `json:"token"`
}
