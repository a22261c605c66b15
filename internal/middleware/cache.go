package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/cocoatrail/festival-api/pkg/logger"
)

// Cache serves anonymous GET responses from redis. Anonymous catalog results
// only change with the clock (open-now, current facets), so a short TTL is
// safe. Requests carrying a device token are never cached or served from the
// cache: their responses depend on favourite state, and a toggle must be
// visible to the very next request.
func Cache(client *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil || !cacheable(c) {
			return c.Next()
		}

		key := cacheKey(c)
		ctx := c.UserContext()

		if cached, err := client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		err := c.Next()

		if c.Response().StatusCode() == fiber.StatusOK {
			body := c.Response().Body()
			if setErr := client.Set(ctx, key, body, ttl).Err(); setErr != nil {
				logger.Warn(ctx).
					Err(setErr).
					Str("path", c.Path()).
					Msg("Failed to cache response")
			} else {
				c.Set("X-Cache", "MISS")
			}
		}

		return err
	}
}

// cacheable reports whether the request may go through the cache. Only
// anonymous GETs qualify.
func cacheable(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodGet && c.Get("Authorization") == ""
}

func cacheKey(c *fiber.Ctx) string {
	components := fmt.Sprintf("%s:%s:%s",
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
	)
	hash := sha256.Sum256([]byte(components))
	return "cache:" + hex.EncodeToString(hash[:])
}
