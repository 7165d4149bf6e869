package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
	"github.com/iliyamo/movie-booking-gateway/internal/session"
)

// ProfileHandler serves the read-only profile screen: the current user
// and their booking history with payments attached.  The mirrors are
// refreshed on every request and never reconciled against concurrent
// writes.
type ProfileHandler struct {
	Bookings *client.BookingClient // booking service client
	Payments *client.PaymentClient // payment service client
	Session  *session.Context      // resolves the current user
}

// NewProfileHandler constructs a ProfileHandler and panics on nil
// dependencies.
func NewProfileHandler(bookings *client.BookingClient, payments *client.PaymentClient, sess *session.Context) *ProfileHandler {
	if bookings == nil || payments == nil || sess == nil {
		panic("nil dependency passed to NewProfileHandler")
	}
	return &ProfileHandler{Bookings: bookings, Payments: payments, Session: sess}
}

// Me handles GET /v1/me.
func (h *ProfileHandler) Me(c echo.Context) error {
	user, err := h.Session.CurrentUser(c.Request().Context(), c)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": user})
}

// bookingWithPayment pairs one booking with the payment recorded for
// it, when one exists.  A booking without a payment is the orphan case
// left behind by a payment-step failure and renders as unpaid.
type bookingWithPayment struct {
	model.Booking
	Payment *model.Payment `json:"payment,omitempty"`
}

// History handles GET /v1/me/bookings.  Bookings and payments are
// fetched independently and joined by booking id; a failure to load
// payments degrades to history without payment detail rather than an
// empty screen.
func (h *ProfileHandler) History(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.Session.CurrentUser(ctx, c)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return upstreamError(c, err)
	}

	bookings, err := h.Bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return upstreamError(c, err)
	}

	byBooking := map[uint64]*model.Payment{}
	if payments, err := h.Payments.ListByUser(ctx, user.ID); err == nil {
		for i := range payments {
			byBooking[payments[i].BookingID] = &payments[i]
		}
	}

	items := make([]bookingWithPayment, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingWithPayment{Booking: b, Payment: byBooking[b.ID]})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Booking handles GET /v1/me/bookings/:id.  A booking belonging to a
// different user is reported as not found rather than forbidden, so the
// route does not confirm which ids exist.
func (h *ProfileHandler) Booking(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.Session.CurrentUser(ctx, c)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return upstreamError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	b, err := h.Bookings.Get(ctx, id)
	if err != nil {
		return upstreamError(c, err)
	}
	if b.UserID != user.ID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	item := bookingWithPayment{Booking: *b}
	if payments, err := h.Payments.ListByBooking(ctx, id); err == nil && len(payments) > 0 {
		item.Payment = &payments[0]
	}
	return c.JSON(http.StatusOK, echo.Map{"item": item})
}
