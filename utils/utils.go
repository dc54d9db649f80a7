package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse creates a standardized error response. Internal error
// detail stays server-side; callers only ever see the message.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// SuccessResponse creates a standardized success envelope carrying the
// stored lead projection.
func SuccessResponse(message string, lead interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"message": message,
		"lead":    lead,
	}
}
