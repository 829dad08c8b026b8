package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Egham-7/cover-letter-ai/internal/services/request"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func offlineApp() *fiber.App {
	app := fiber.New()
	app.Use(Offline())
	app.Get("/", func(c *fiber.Ctx) error {
		if IsOffline(c) {
			return c.SendString("offline")
		}
		return c.SendString("online")
	})
	return app
}

func TestOffline(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "no signal", want: "online"},
		{name: "header", header: "true", want: "offline"},
		{name: "header any case", header: "TRUE", want: "offline"},
		{name: "cookie", cookie: "true", want: "offline"},
		{name: "cookie false", cookie: "false", want: "online"},
		{name: "cookie overrides header", header: "false", cookie: "true", want: "offline"},
		{name: "false cookie keeps header", header: "true", cookie: "false", want: "offline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(OfflineHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: OfflineCookie, Value: tt.cookie})
			}
			_, got := send(t, offlineApp(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestID(t *testing.T) {
	reqSvc := request.NewBaseService()
	app := fiber.New()
	app.Use(RequestID(reqSvc))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(reqSvc.GetRequestID(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(request.RequestIDHeader, "  abc-123 ")
	resp, got := send(t, app, req)
	assert.Equal(t, "abc-123", got)
	assert.Equal(t, "abc-123", resp.Header.Get(request.RequestIDHeader))

	resp, got = send(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	assert.True(t, strings.HasPrefix(got, "req_"))
	assert.Equal(t, got, resp.Header.Get(request.RequestIDHeader))
}

func TestAdminAuth(t *testing.T) {
	app := fiber.New()
	app.Use(NewAdminAuth("s3cret", response.NewBaseService()).RequireToken())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, _ := send(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(AdminTokenHeader, "wrong")
	resp, _ = send(t, app, req)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(AdminTokenHeader, "s3cret")
	resp, got := send(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", got)
}

func TestRequestIDSurvivesLaterRequests(t *testing.T) {
	reqSvc := request.NewBaseService()
	var held []string
	app := fiber.New()
	app.Use(RequestID(reqSvc))
	app.Get("/", func(c *fiber.Ctx) error {
		held = append(held, reqSvc.GetRequestID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	first := strings.Repeat("A", 32)
	second := strings.Repeat("B", 32)
	for _, id := range []string{first, second} {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(request.RequestIDHeader, id)
		send(t, app, req)
	}

	assert.Equal(t, []string{first, second}, held)
}
