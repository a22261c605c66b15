package device

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(m *TokenManager) *fiber.App {
	app := fiber.New()

	app.Get("/required", RequireDevice(m), func(c *fiber.Ctx) error {
		return c.SendString(FromContext(c))
	})
	app.Get("/optional", OptionalDevice(m), func(c *fiber.Ctx) error {
		return c.SendString(FromContext(c))
	})

	return app
}

func TestRequireDevice(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	app := newTestApp(m)

	_, token, err := m.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/required", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestOptionalDevicePassesWithoutToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	app := newTestApp(m)

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
