package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-booking-gateway/internal/config"
)

// NewRateLimit returns a fixed-window limiter keyed by client IP and
// route.  The counter lives in Redis (INCR + EXPIRE on first hit) so the
// limit holds across replicas.  When Redis is unavailable the limiter
// lets requests through; protecting the checkout path is not worth
// failing it closed.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			// Bucket by nanoseconds so sub-second windows stay valid.
			window := time.Now().UnixNano() / int64(cfg.Window)
			key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				retry := int((cfg.Window + time.Second - 1) / time.Second)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"retry_after": retry,
				})
			}
			return next(c)
		}
	}
}
