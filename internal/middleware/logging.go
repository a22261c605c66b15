package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cocoatrail/festival-api/pkg/logger"
)

// RequestLogging emits one structured log line per completed request, at a
// level matching the response class.
func RequestLogging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		statusCode := c.Response().StatusCode()

		event := logger.Info(c.UserContext())
		if statusCode >= 500 {
			event = logger.Error(c.UserContext())
		} else if statusCode >= 400 {
			event = logger.Warn(c.UserContext())
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("ip", c.IP()).
			Str("request_id", c.Get("X-Request-Id")).
			Msg("Request completed")

		if err != nil {
			logger.Error(c.UserContext()).
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("Request error")
		}

		return err
	}
}
