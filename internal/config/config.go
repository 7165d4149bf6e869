package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses the HTTP client timeout
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The six *API fields are the base URLs of
// the backend microservices the gateway orchestrates; everything else is
// local behaviour.
type Config struct {
	Env         string        // application environment (e.g. "dev", "prod")
	Port        string        // HTTP port to listen on
	JWTSecret   string        // secret shared with the user service for verifying tokens
	UserAPI     string        // base URL of the user service
	MovieAPI    string        // base URL of the movie service
	ShowtimeAPI string        // base URL of the showtime service
	SeatAPI     string        // base URL of the seat service
	BookingAPI  string        // base URL of the booking service
	PaymentAPI  string        // base URL of the payment service
	HTTPTimeout time.Duration // per-call timeout for every backend request
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Service base URLs
// default to the local compose layout so a dev gateway starts unconfigured.
func Load() Config {
	return Config{
		Env:         must("APP_ENV"),    // environment (dev/test/prod)
		Port:        must("APP_PORT"),   // port to bind the HTTP server
		JWTSecret:   must("JWT_SECRET"), // secret used to verify user-service tokens
		UserAPI:     getenv("USER_API", "http://localhost:8081/api/users"),
		MovieAPI:    getenv("MOVIE_API", "http://localhost:8082/api/movies"),
		ShowtimeAPI: getenv("SHOWTIME_API", "http://localhost:8083/api/showtimes"),
		SeatAPI:     getenv("SEAT_API", "http://localhost:8084/api/seats"),
		BookingAPI:  getenv("BOOKING_API", "http://localhost:8085/api/bookings"),
		PaymentAPI:  getenv("PAYMENT_API", "http://localhost:8086/api/payments"),
		HTTPTimeout: parseDur(getenv("HTTP_TIMEOUT", "10s")),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or the given default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// atoi converts a string to an int, returning zero on failure.
func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

// parseDur parses a duration, falling back to one second on failure.
func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
