package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-booking-gateway/internal/config"
)

// bodyCapture buffers the JSON body a handler writes while still
// streaming it to the client, so a successful response can be stored
// after the fact.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (bc *bodyCapture) WriteHeader(code int) {
	bc.status = code
	bc.ResponseWriter.WriteHeader(code)
}

func (bc *bodyCapture) Write(b []byte) (int, error) {
	bc.buf.Write(b)
	return bc.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the route and query string.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache returns a middleware that serves GET responses for
// the browse endpoints out of Redis.  Only 200 responses are stored and
// every Redis failure falls through to the handler, so a missing or
// broken Redis simply disables the cache.  Cached entries carry an
// X-Cache header so stale reads are diagnosable.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			capture := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = capture
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}
			if capture.status == http.StatusOK && capture.buf.Len() > 0 {
				// Best effort; a failed SET just means a cold cache.
				_ = rdb.Set(ctx, key, capture.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}
