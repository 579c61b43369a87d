package config

import "time"

// CacheConfig controls the response cache middleware applied to the public
// browse endpoints. Caching is skipped entirely when Enabled is false or no
// Redis client could be constructed.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_ENABLED, CACHE_TTL and CACHE_PREFIX with
// defaults suitable for development.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenvDefault("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenvDefault("CACHE_TTL", "30s")),
		Prefix:  getenvDefault("CACHE_PREFIX", "cache"),
	}
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
