package client

import (
	"context"
	"fmt"
	"net/http"
)

// Layout is the row/column descriptor the seat service reports for a
// showtime.  Either dimension may be zero when the service has no layout
// on record; callers fall back to the default grid in that case.
type Layout struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SeatAvailability is the one snapshot of seat state the booking screen
// gets per entry.  It is not refreshed during the session; contention
// with concurrent bookers is arbitrated by the backend when the booking
// is created.
type SeatAvailability struct {
	ReservedSeats  []string `json:"reservedSeats"`
	AvailableSeats []string `json:"availableSeats"`
	Layout         *Layout  `json:"layout"`
}

// SeatClient talks to the seat service.
type SeatClient struct {
	base
}

// NewSeatClient builds a SeatClient against the given base URL, e.g.
// "http://localhost:8086/api/seats".
func NewSeatClient(baseURL string, hc *http.Client) *SeatClient {
	return &SeatClient{base: newBase(baseURL, hc)}
}

// Availability fetches the reserved-seat snapshot and layout for one
// showtime.
func (c *SeatClient) Availability(ctx context.Context, showtimeID uint64) (*SeatAvailability, error) {
	var out SeatAvailability
	path := fmt.Sprintf("/showtime/%d/availability", showtimeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
