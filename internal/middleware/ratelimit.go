package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/hbnb-project/hbnb-api/internal/config"
)

// RateLimit returns a fixed-window limiter keyed by client identity (user id
// when authenticated, IP otherwise). The counter lives in Redis so multiple
// instances share the same budget. A nil Redis client or disabled config
// yields a pass-through middleware; Redis failures fail open.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, clientID(c), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				slog.Debug("rate limiter unavailable", "error", err)
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				retry := cfg.Window.Seconds() - float64(time.Now().Unix()%int64(cfg.Window.Seconds()))
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%.0f", retry))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
