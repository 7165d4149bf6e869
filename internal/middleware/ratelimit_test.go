package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-booking-gateway/internal/config"
)

// deadRedis returns a client pointed at a port nothing listens on, so
// every command errors quickly and the limiter's fail-open path runs.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
}

func invokeLimited(t *testing.T, cfg config.RateLimitConfig, rdb *redis.Client) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := NewRateLimit(cfg, rdb)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestRateLimitSubSecondWindow(t *testing.T) {
	// A window shorter than one second must still compute a valid
	// bucket; the request then falls through because Redis is down.
	cfg := config.RateLimitConfig{Enabled: true, Limit: 5, Window: 500 * time.Millisecond, Prefix: "rl"}
	rec := invokeLimited(t, cfg, deadRedis())
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestRateLimitZeroWindowDefaults(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Limit: 5, Prefix: "rl"}
	rec := invokeLimited(t, cfg, deadRedis())
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	rec := invokeLimited(t, config.RateLimitConfig{Enabled: false}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
