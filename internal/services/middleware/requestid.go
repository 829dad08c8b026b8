package middleware

import (
	"github.com/Egham-7/cover-letter-ai/internal/services/request"

	"github.com/gofiber/fiber/v2"
)

// RequestID resolves the request ID up front and echoes it on the response.
func RequestID(reqSvc *request.BaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(request.RequestIDHeader, reqSvc.GetRequestID(c))
		return c.Next()
	}
}
