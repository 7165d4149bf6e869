package config

import "time"

// CacheConfig defines settings for the browse-response cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled.  Only GET responses are ever cached; movie and showtime
// listings change rarely compared to how often the home screen requests
// them.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
