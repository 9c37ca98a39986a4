package presenters

import (
	"FitLog-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes the uniform failure shape. Field-level details are
// attached only for validation failures; any other error stays server-side.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		if details := utils.FormatValidationErrors(err); len(details) > 0 {
			response["details"] = details
		}
	}
	return c.Status(statusCode).JSON(response)
}
