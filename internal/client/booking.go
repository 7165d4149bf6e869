package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// ErrNoBookingID is returned when the booking service reports a created
// booking without a retrievable identity.  The orchestrator treats this
// as a fatal protocol violation, not a retryable condition.
var ErrNoBookingID = errors.New("booking created without an id")

// CreateBookingRequest is the booking service's create payload.
type CreateBookingRequest struct {
	UserID        uint64   `json:"userId"`
	MovieID       uint64   `json:"movieId"`
	ShowtimeID    uint64   `json:"showtimeId"`
	SeatsSelected []string `json:"seatsSelected"`
	TotalAdults   int      `json:"totalAdults"`
	TotalChildren int      `json:"totalChildren"`
	ShowDate      string   `json:"showDate"`
	Status        string   `json:"status"`
}

// BookingClient talks to the booking service.
type BookingClient struct {
	base
}

// NewBookingClient builds a BookingClient against the given base URL.
func NewBookingClient(baseURL string, hc *http.Client) *BookingClient {
	return &BookingClient{base: newBase(baseURL, hc)}
}

// Create asks the booking service to persist a new booking and returns
// its identity.  A 2xx response that carries no id yields ErrNoBookingID.
func (c *BookingClient) Create(ctx context.Context, req CreateBookingRequest) (uint64, error) {
	var out struct {
		BookingID uint64 `json:"bookingId"`
		ID        uint64 `json:"id"` // some deployments return the bare record
	}
	if err := c.do(ctx, http.MethodPost, "", req, &out); err != nil {
		return 0, err
	}
	id := out.BookingID
	if id == 0 {
		id = out.ID
	}
	if id == 0 {
		return 0, ErrNoBookingID
	}
	return id, nil
}

// UpdateStatus flips the status label on an existing booking.
func (c *BookingClient) UpdateStatus(ctx context.Context, bookingID uint64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/%d", bookingID), body, nil)
}

// Get fetches one booking by id.
func (c *BookingClient) Get(ctx context.Context, bookingID uint64) (*model.Booking, error) {
	var out model.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", bookingID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser fetches the booking history for the profile screen.  The
// result is a read-only mirror refreshed on demand.
func (c *BookingClient) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
