package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-booking-gateway/internal/config"     // cache and rate limit settings
	"github.com/iliyamo/movie-booking-gateway/internal/handler"    // handlers that implement the gateway logic
	"github.com/iliyamo/movie-booking-gateway/internal/middleware" // JWT, role, cache and rate limit middleware
	"github.com/iliyamo/movie-booking-gateway/internal/model"      // role constants
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /healthz endpoint lets load balancers and monitoring verify
	// the gateway is up without touching any backend service.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login and registration passthroughs under
// /v1/auth.  These proxy to the user service and apply no middleware of
// their own.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/register", a.Register)
}

// RegisterBrowse registers the unauthenticated browse endpoints: movie
// listing, search, detail and showtimes.  GET responses are served
// through the Redis response cache when one is configured.
func RegisterBrowse(e *echo.Echo, m *handler.MovieHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.NewResponseCache(cacheCfg, rdb)
	e.GET("/v1/movies", m.List, cached)
	e.GET("/v1/movies/search", m.Search, cached)
	e.GET("/v1/movies/:id", m.Get, cached)
	e.GET("/v1/movies/:id/showtimes", m.ShowtimesByMovie, cached)
	e.GET("/v1/showtimes/:id", m.GetShowtime, cached)
}

// RegisterBooking registers the authenticated booking flow: the seat
// map, the checkout step, payments and the profile screens.  All routes
// require a valid user-service token; the checkout and payment routes
// additionally sit behind the rate limiter because they fan out writes
// to the backends.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, p *handler.PaymentHandler, pr *handler.ProfileHandler, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleCustomer, model.RoleTheaterManager))

	limited := middleware.NewRateLimit(rlCfg, rdb)

	auth.GET("/showtimes/:id/seatmap", b.Seatmap)
	auth.POST("/showtimes/:id/checkout", b.Checkout, limited)
	auth.POST("/payments", p.Submit, limited)

	auth.GET("/me", pr.Me)
	auth.GET("/me/bookings", pr.History)
	auth.GET("/me/bookings/:id", pr.Booking)
}

// RegisterManager registers the theater-manager back office.  Routes
// require a token carrying the THEATER_MANAGER role.
func RegisterManager(e *echo.Echo, m *handler.ManagerHandler, jwtSecret string) {
	g := e.Group("/v1/manager")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleTheaterManager))

	g.POST("/movies", m.CreateMovie)
	g.PUT("/movies/:id", m.UpdateMovie)
	g.DELETE("/movies/:id", m.DeleteMovie)
	g.POST("/showtimes", m.CreateShowtime)
	g.PUT("/showtimes/:id", m.UpdateShowtime)
	g.DELETE("/showtimes/:id", m.DeleteShowtime)
}
