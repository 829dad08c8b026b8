package response

import (
	"errors"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/gofiber/fiber/v2"
)

// BaseService provides common HTTP response utilities
type BaseService struct{}

// NewBaseService creates a new base response service
func NewBaseService() *BaseService {
	return &BaseService{}
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// Error sends an error response with specified status, type, and code
func (s *BaseService) Error(c *fiber.Ctx, status int, message, errorType, code string) error {
	return c.Status(status).JSON(ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Type:    errorType,
			Code:    code,
		},
	})
}

// Success sends a 200 OK response with the provided data
func (s *BaseService) Success(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

// BadRequest sends a 400 invalid request error.
func (s *BaseService) BadRequest(c *fiber.Ctx, message string) error {
	return s.Error(c, fiber.StatusBadRequest, message, "invalid_request_error", "bad_request")
}

// FromError renders err. Validation errors keep their message; everything
// else goes through models.SanitizeError so causes never leak.
func (s *BaseService) FromError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Type == models.ErrorTypeValidation {
		return s.BadRequest(c, appErr.Message)
	}

	safe := models.SanitizeError(err)
	return s.Error(c, safe.GetStatusCode(), safe.Message, string(safe.Type), safe.Code)
}
