package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// OfflineHeader forces fallback content for a single request.
	OfflineHeader = "X-Offline-Mode"
	// OfflineCookie is set by the web client's offline toggle.
	OfflineCookie = "offlineMode"
)

// Offline copies the offline cookie onto the request header so handlers only
// need to look in one place. A "true" cookie overrides whatever header was sent.
func Offline() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Cookies(OfflineCookie) == "true" {
			c.Request().Header.Set(OfflineHeader, "true")
		}
		return c.Next()
	}
}

// IsOffline reports whether the request asked for fallback content.
func IsOffline(c *fiber.Ctx) bool {
	return strings.EqualFold(strings.TrimSpace(c.Get(OfflineHeader)), "true")
}
