package device

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the fiber locals key holding the authenticated device ID.
const LocalsKey = "device_id"

// RequireDevice validates the bearer token and stores the device ID in
// request locals. Requests without a valid token get 401.
func RequireDevice(m *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceID, ok := deviceFromHeader(m, c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Device token required",
			})
		}

		c.Locals(LocalsKey, deviceID)
		return c.Next()
	}
}

// OptionalDevice stores the device ID when a valid token is present and
// passes the request through either way. List endpoints use this so
// favourites facets work without making the catalog private.
func OptionalDevice(m *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deviceID, ok := deviceFromHeader(m, c); ok {
			c.Locals(LocalsKey, deviceID)
		}
		return c.Next()
	}
}

// FromContext returns the device ID set by the middleware, or empty.
func FromContext(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}

func deviceFromHeader(m *TokenManager, c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	deviceID, err := m.Validate(parts[1])
	if err != nil {
		return "", false
	}
	return deviceID, true
}
