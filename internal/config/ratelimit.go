package config

import (
	"strconv"
	"time"
)

// RateLimitConfig controls the fixed-window request limiter. Limiting is
// skipped entirely when Enabled is false or no Redis client could be
// constructed.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // max requests per window per client
	Window  time.Duration // window length
	Prefix  string
}

// LoadRateLimitConfig reads RATELIMIT_ENABLED, RATELIMIT_LIMIT and
// RATELIMIT_WINDOW with defaults suitable for development.
func LoadRateLimitConfig() RateLimitConfig {
	limit, err := strconv.Atoi(getenvDefault("RATELIMIT_LIMIT", "120"))
	if err != nil || limit <= 0 {
		limit = 120
	}
	return RateLimitConfig{
		Enabled: getenvDefault("RATELIMIT_ENABLED", "true") == "true",
		Limit:   limit,
		Window:  parseDur(getenvDefault("RATELIMIT_WINDOW", "1m")),
		Prefix:  getenvDefault("RATELIMIT_PREFIX", "ratelimit"),
	}
}
