package config

import "time"

// CacheConfig controls the response cache in front of the public directory
// endpoints.  Caching is skipped entirely when Enabled is false or when no
// Redis client could be built.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads the cache settings from the environment, with
// defaults suitable for the slowly-changing stall directory.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
