package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"streamku_backend/internals/configs"
)

const (
	AccountTokenTTL = 30 * 24 * time.Hour
	AdminTokenTTL   = 7 * 24 * time.Hour
)

// GenerateAccountToken menerbitkan token HS256 berisi account_id + exp (30 hari).
func GenerateAccountToken(accountID int) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"exp":        time.Now().Add(AccountTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// GenerateAdminToken menerbitkan token HS256 berisi admin_id + is_admin + exp (7 hari).
func GenerateAdminToken(adminID int) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"is_admin": true,
		"exp":      time.Now().Add(AdminTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
