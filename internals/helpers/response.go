package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Kontrak response mengikuti klien lama:
// - sukses dengan data  → body data apa adanya (objek / array)
// - sukses tanpa data   → {"message": "..."}
// - gagal               → {"error": "..."}

func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func JsonMessage(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"message": message})
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}
