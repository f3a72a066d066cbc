package response

import "github.com/gofiber/fiber/v2"

// Envelope standar biar konsisten
type Envelope map[string]any

type APIError struct {
	Message string         `json:"message"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func Error(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(Envelope{"error": APIError{Message: msg}})
}

// ValidationError merespon 422 dengan daftar field yang melanggar constraint.
func ValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Envelope{
		"error": APIError{
			Message: "validation failed",
			Detail:  map[string]any{"fields": fields},
		},
	})
}
