// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"streamku_backend/internals/configs"
	helper "streamku_backend/internals/helpers"
)

// Locals keys yang di-set guard untuk controller di belakangnya.
const (
	LocAccountID = "account_id"
	LocAdminID   = "admin_id"
)

func parseClaims(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	return claims, err
}

// AccountAuth memverifikasi token akun dan menaruh account_id di Locals.
// Semua kegagalan (malformed, expired, signature) dilebur jadi satu 401;
// hanya header kosong yang dibedakan pesannya.
func AccountAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is missing")
		}

		claims, err := parseClaims(raw)
		if err != nil {
			log.Printf("[ERROR] account token parse: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid")
		}

		id, ok := claims["account_id"].(float64)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid")
		}

		c.Locals(LocAccountID, int(id))
		return c.Next()
	}
}

// AdminAuth memverifikasi token admin. Token valid tanpa klaim is_admin → 403,
// token rusak/expired → 401.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is missing")
		}

		claims, err := parseClaims(raw)
		if err != nil {
			log.Printf("[ERROR] admin token parse: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid")
		}

		if isAdmin, _ := claims["is_admin"].(bool); !isAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
		}

		id, ok := claims["admin_id"].(float64)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid")
		}

		c.Locals(LocAdminID, int(id))
		return c.Next()
	}
}

// CurrentAccountID membaca principal yang di-inject AccountAuth.
func CurrentAccountID(c *fiber.Ctx) int {
	id, _ := c.Locals(LocAccountID).(int)
	return id
}

// CurrentAdminID membaca principal yang di-inject AdminAuth.
func CurrentAdminID(c *fiber.Ctx) int {
	id, _ := c.Locals(LocAdminID).(int)
	return id
}
