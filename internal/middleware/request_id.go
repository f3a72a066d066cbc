package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID memastikan tiap request punya X-Request-ID (dipakai buat tracing
// di log reverse proxy). ID dari client dipertahankan kalau sudah ada.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.Locals("request_id", rid)
		return c.Next()
	}
}
