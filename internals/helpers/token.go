package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawToken mengembalikan token dari header Authorization.
// Prefix "Bearer " opsional; token telanjang juga diterima.
func GetRawToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		return ""
	}
	const p = "Bearer "
	if strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return auth
}
