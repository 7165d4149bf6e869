package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// ShowtimeClient talks to the showtime service.
type ShowtimeClient struct {
	base
}

// NewShowtimeClient builds a ShowtimeClient against the given base URL.
func NewShowtimeClient(baseURL string, hc *http.Client) *ShowtimeClient {
	return &ShowtimeClient{base: newBase(baseURL, hc)}
}

// Get fetches one showtime by id.
func (c *ShowtimeClient) Get(ctx context.Context, showtimeID uint64) (*model.Showtime, error) {
	var out model.Showtime
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", showtimeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByMovie lists the showtimes scheduled for a movie.
func (c *ShowtimeClient) ByMovie(ctx context.Context, movieID uint64) ([]model.Showtime, error) {
	var out []model.Showtime
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movie/%d", movieID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create schedules a new showtime.  Manager back-office only.
func (c *ShowtimeClient) Create(ctx context.Context, s model.Showtime) (*model.Showtime, error) {
	var out model.Showtime
	if err := c.do(ctx, http.MethodPost, "", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing showtime.  Manager back-office only.
func (c *ShowtimeClient) Update(ctx context.Context, s model.Showtime) (*model.Showtime, error) {
	var out model.Showtime
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/%d", s.ID), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a showtime.  Manager back-office only.
func (c *ShowtimeClient) Delete(ctx context.Context, showtimeID uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%d", showtimeID), nil, nil)
}
