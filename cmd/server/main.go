package main // Entry point package

import (
	"log"      // Logging library
	"net/http" // Shared HTTP client for all backend calls

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/movie-booking-gateway/internal/client"  // Backend service clients
	"github.com/iliyamo/movie-booking-gateway/internal/config"  // Internal config loader
	"github.com/iliyamo/movie-booking-gateway/internal/handler" // HTTP handlers
	"github.com/iliyamo/movie-booking-gateway/internal/router"  // Internal router setup
	"github.com/iliyamo/movie-booking-gateway/internal/session" // Session context
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments use the environment
	cfg := config.Load()

	// One HTTP client with the fixed per-call timeout, shared by every
	// backend client.  There is no retry layer anywhere; failures are
	// surfaced to the user.
	hc := &http.Client{Timeout: cfg.HTTPTimeout}

	users := client.NewUserClient(cfg.UserAPI, hc)
	movies := client.NewMovieClient(cfg.MovieAPI, hc)
	showtimes := client.NewShowtimeClient(cfg.ShowtimeAPI, hc)
	seats := client.NewSeatClient(cfg.SeatAPI, hc)
	bookings := client.NewBookingClient(cfg.BookingAPI, hc)
	payments := client.NewPaymentClient(cfg.PaymentAPI, hc)

	// Redis backs the profile cache, the browse response cache and the
	// rate limiter.  A nil client disables all three.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; caching and rate limiting disabled")
	}
	sess := session.NewContext(users, rdb)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(users))
	router.RegisterBrowse(e, handler.NewMovieHandler(movies, showtimes), config.LoadCacheConfig(), rdb)
	router.RegisterBooking(e,
		handler.NewBookingHandler(seats, showtimes, movies),
		handler.NewPaymentHandler(bookings, payments, sess),
		handler.NewProfileHandler(bookings, payments, sess),
		cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)
	router.RegisterManager(e, handler.NewManagerHandler(movies, showtimes), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
