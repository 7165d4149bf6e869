package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied in front of
// the checkout and payment routes.  The window counter lives in Redis so
// the limit holds across gateway replicas.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window
	Window  time.Duration // window length
	Prefix  string        // Redis key prefix
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig.  Defaults allow 30 requests per minute per client.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   atoi(getenv("RATE_LIMIT_LIMIT", "30")),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
