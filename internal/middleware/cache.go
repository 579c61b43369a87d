package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/hbnb-project/hbnb-api/internal/config"
)

// cachedResponse is the envelope stored in Redis: status plus body bytes.
// Only JSON GET responses with 2xx status are cached.
type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// bodyRecorder duplicates the response body into a buffer while forwarding
// it to the client.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (br *bodyRecorder) WriteHeader(code int) {
	br.status = code
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	br.buf.Write(b)
	return br.ResponseWriter.Write(b)
}

// Cache returns a middleware that serves GET responses from Redis for the
// configured TTL. It is meant for the public browse endpoints; anything
// authenticated must not be wrapped with it. A nil Redis client or disabled
// config yields a pass-through middleware.
func Cache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					return c.JSONBlob(cached.Status, cached.Body)
				}
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if rec.status >= 200 && rec.status < 300 {
				raw, err := json.Marshal(cachedResponse{Status: rec.status, Body: rec.buf.Bytes()})
				if err == nil {
					if err := rdb.Set(ctx, key, raw, cfg.TTL).Err(); err != nil {
						slog.Debug("cache store failed", "key", key, "error", err)
					}
				}
			}
			return nil
		}
	}
}

// cacheKey hashes route plus query under the configured prefix.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
