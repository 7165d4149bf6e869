package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/checkout"
	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
	"github.com/iliyamo/movie-booking-gateway/internal/pricing"
	"github.com/iliyamo/movie-booking-gateway/internal/seatmap"
)

// BookingHandler serves the seat-selection screen and the category
// checkout step.  A valid showtime id is the precondition for both; its
// absence means there is nothing to fetch availability for, so the
// request fails immediately and the client routes the user back one
// step.
type BookingHandler struct {
	Seats     *client.SeatClient     // seat service client
	Showtimes *client.ShowtimeClient // showtime service client
	Movies    *client.MovieClient    // movie service client
}

// NewBookingHandler constructs a BookingHandler and panics on nil clients.
func NewBookingHandler(seats *client.SeatClient, showtimes *client.ShowtimeClient, movies *client.MovieClient) *BookingHandler {
	if seats == nil || showtimes == nil || movies == nil {
		panic("nil client passed to NewBookingHandler")
	}
	return &BookingHandler{Seats: seats, Showtimes: showtimes, Movies: movies}
}

// Seatmap handles GET /v1/showtimes/:id/seatmap.  It issues exactly one
// availability fetch for the showtime and renders the grid split into
// the two column groups the screen lays out side by side.  A failed
// fetch is terminal for the screen: 502, no retry, the client goes back.
func (h *BookingHandler) Seatmap(c echo.Context) error {
	showtimeID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing showtime id"})
	}
	ctx := c.Request().Context()

	avail, err := h.Seats.Availability(ctx, showtimeID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "seat availability unavailable, go back and retry"})
	}

	rows, cols := seatmap.DefaultRows, seatmap.DefaultCols
	if avail.Layout != nil && avail.Layout.Rows > 0 && avail.Layout.Cols > 0 {
		rows, cols = avail.Layout.Rows, avail.Layout.Cols
	}
	grid, err := seatmap.Generate(rows, cols)
	if err != nil {
		// The seat service reported a layout outside the 26-row
		// contract; surface it instead of truncating silently.
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "seat service reported an invalid layout"})
	}
	left, right := seatmap.SplitColumns(grid)

	return c.JSON(http.StatusOK, echo.Map{
		"showtimeId": showtimeID,
		"rows":       rows,
		"cols":       cols,
		"left":       left,
		"right":      right,
		"reserved":   avail.ReservedSeats,
	})
}

// checkoutRequest is the body of POST /v1/showtimes/:id/checkout: the
// picked seats in click order plus the category split.
type checkoutRequest struct {
	Seats   []string `json:"seats"`
	QtyFull int      `json:"qtyFull"`
	QtyHalf int      `json:"qtyHalf"`
}

// Checkout handles POST /v1/showtimes/:id/checkout.  It replays the
// user's picks against a fresh availability snapshot, applies the
// category allocation, and returns the immutable payload the payment
// step will consume.  The payload makes no further round-trip to any
// backend until the booking is created.
func (h *BookingHandler) Checkout(c echo.Context) error {
	showtimeID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing showtime id"})
	}
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select at least one seat"})
	}
	if req.QtyFull+req.QtyHalf != len(req.Seats) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category quantities must match the seat count"})
	}
	ctx := c.Request().Context()

	st, err := h.Showtimes.Get(ctx, showtimeID)
	if err != nil {
		return upstreamError(c, err)
	}
	mv, err := h.Movies.Get(ctx, st.MovieID)
	if err != nil {
		return upstreamError(c, err)
	}
	avail, err := h.Seats.Availability(ctx, showtimeID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "seat availability unavailable, go back and retry"})
	}

	rows, cols := seatmap.DefaultRows, seatmap.DefaultCols
	if avail.Layout != nil && avail.Layout.Rows > 0 && avail.Layout.Cols > 0 {
		rows, cols = avail.Layout.Rows, avail.Layout.Cols
	}
	grid, err := seatmap.Generate(rows, cols)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "seat service reported an invalid layout"})
	}

	// Replay the picks through the selection state.  A reserved seat,
	// an unknown id or a duplicate all leave the final count short, in
	// which case the submitted selection was never legal.
	sel := seatmap.NewSelection(grid, avail.ReservedSeats)
	for _, id := range req.Seats {
		sel.Toggle(id)
	}
	if sel.Count() != len(req.Seats) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "some seats are reserved or invalid"})
	}

	alloc := pricing.NewAllocation(sel.Count(), st.PriceCents, st.HalfPriceCents)
	alloc.SetFull(req.QtyFull)
	if !alloc.CanConfirm() || alloc.QtyHalf() != req.QtyHalf {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category quantities must match the seat count"})
	}

	payload, err := checkout.BuildPayload(model.NewShowtimeContext(*mv, *st), sel.Selected(), alloc)
	if err != nil {
		if errors.Is(err, checkout.ErrQuantityMismatch) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category quantities must match the seat count"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"payload": payload})
}
