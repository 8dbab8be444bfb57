package middleware

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/hawkar/hawkar-web/internal/config"
)

// NewRateLimiter throttles a route per client IP using a fixed window counter
// in Redis.  It fronts the credential endpoints, where the only legitimate
// traffic is a human typing a password.  Disabled config or a missing Redis
// client makes it a pass-through, and a Redis error at request time lets the
// request proceed: losing the limiter briefly is better than locking
// everyone out of login.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := cfg.Prefix + ":" + c.RealIP() + ":" + c.Request().URL.Path

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Printf("ratelimit: redis incr failed, letting request through: %v", err)
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
