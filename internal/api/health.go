package api

import (
	"context"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/services/cache"
	"github.com/Egham-7/cover-letter-ai/internal/services/database"
	"github.com/Egham-7/cover-letter-ai/internal/services/provider"

	"github.com/gofiber/fiber/v2"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusMissing   = "missing"
	statusPresent   = "present"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	cache    *cache.ResponseCache
	db       *database.DB
	registry *provider.Registry
}

// NewHealthHandler creates a new health check handler. db may be nil.
func NewHealthHandler(c *cache.ResponseCache, db *database.DB, registry *provider.Registry) *HealthHandler {
	return &HealthHandler{
		cache:    c,
		db:       db,
		registry: registry,
	}
}

// HealthCheck returns the health status of the service and its dependencies.
// Missing provider credentials do not make the service unhealthy since every
// route still answers from the fallback content.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	checks := fiber.Map{
		"cache":                h.checkCache(),
		"provider_credentials": h.checkCredentials(),
	}
	if h.db != nil {
		checks["database"] = h.checkDatabase()
	}

	overallStatus := "healthy"
	statusCode := fiber.StatusOK

	if checks["cache"] == statusUnhealthy || checks["database"] == statusUnhealthy {
		overallStatus = "degraded"
		statusCode = fiber.StatusServiceUnavailable
	}

	response := fiber.Map{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	}

	return c.Status(statusCode).JSON(response)
}

func (h *HealthHandler) checkCache() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		return statusUnhealthy
	}
	return statusHealthy
}

func (h *HealthHandler) checkCredentials() string {
	if h.registry.Empty() {
		return statusMissing
	}
	return statusPresent
}

func (h *HealthHandler) checkDatabase() string {
	if err := h.db.Ping(); err != nil {
		return statusUnhealthy
	}
	return statusHealthy
}
