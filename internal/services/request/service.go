package request

import (
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the caller's correlation ID in and out.
	RequestIDHeader = "X-Request-ID"

	// requestIDLocalKey is the shared key for storing request ID in fiber locals
	requestIDLocalKey = "request_id"
	// maxRequestIDLength is the maximum allowed length for request IDs
	maxRequestIDLength = 256
)

// Validatable is a request body that can report missing fields.
type Validatable interface {
	Validate() error
}

// BaseService provides common request handling utilities
type BaseService struct{}

// NewBaseService creates a new base request service
func NewBaseService() *BaseService {
	return &BaseService{}
}

func (s *BaseService) sanitizeRequestID(reqID string) string {
	sanitized := strings.TrimSpace(reqID)
	if len(sanitized) > maxRequestIDLength {
		sanitized = sanitized[:maxRequestIDLength]
	}
	return sanitized
}

// GetRequestID returns the request ID cached in locals, the caller's
// X-Request-ID header, or a freshly generated one, in that order.
func (s *BaseService) GetRequestID(c *fiber.Ctx) string {
	if cachedID, ok := c.Locals(requestIDLocalKey).(string); ok && cachedID != "" {
		return cachedID
	}

	// The header view aliases fasthttp's buffer, which is reused once the
	// handler returns; the ID outlives it in the resolution log.
	requestID := s.sanitizeRequestID(utils.CopyString(c.Get(RequestIDHeader)))
	if requestID == "" {
		requestID = s.GenerateRequestID()
	}

	c.Locals(requestIDLocalKey, requestID)
	return requestID
}

// GenerateRequestID creates a new random request ID
func (s *BaseService) GenerateRequestID() string {
	return "req_" + uuid.NewString()
}

// ParseBody decodes the JSON body into dest and validates it. Both failures
// come back as validation errors.
func (s *BaseService) ParseBody(c *fiber.Ctx, dest Validatable) error {
	if err := c.BodyParser(dest); err != nil {
		return models.NewValidationError("invalid request body", err)
	}
	return dest.Validate()
}
