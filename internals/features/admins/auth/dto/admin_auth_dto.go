package dto

// 🔹 Request login admin (principal terpisah dari akun biasa)
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	AdminID int    `json:"admin_id"`
	Token   string `json:"token"`
}
