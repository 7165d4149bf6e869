package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/checkout"
	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/queue"
	"github.com/iliyamo/movie-booking-gateway/internal/session"
)

// PaymentHandler runs the booking/payment orchestration for a submitted
// checkout payload.  This is the one place the gateway performs real
// multi-step writes against the backends, so the error mapping mirrors
// the flow's asymmetric failure semantics instead of flattening
// everything into one status.
type PaymentHandler struct {
	Bookings *client.BookingClient // booking service client
	Payments *client.PaymentClient // payment service client
	Session  *session.Context      // resolves the paying user
}

// NewPaymentHandler constructs a PaymentHandler and panics on nil
// dependencies.
func NewPaymentHandler(bookings *client.BookingClient, payments *client.PaymentClient, sess *session.Context) *PaymentHandler {
	if bookings == nil || payments == nil || sess == nil {
		panic("nil dependency passed to NewPaymentHandler")
	}
	return &PaymentHandler{Bookings: bookings, Payments: payments, Session: sess}
}

// paymentRequest is the body of POST /v1/payments: the untouched
// checkout payload plus the card form.
type paymentRequest struct {
	Payload *checkout.Payload `json:"payload"`
	Card    checkout.Card     `json:"card"`
}

// Submit handles POST /v1/payments.  Precondition failures (no session,
// incomplete card, invalid payload) return 400 before any backend call.
// A booking-create failure leaves nothing behind and returns 502.  A
// payment failure after the booking exists returns 502 with the
// orphaned booking id so the failure is precise; the booking is
// deliberately not rolled back.  A confirm failure is success with
// confirmed=false.
func (h *PaymentHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.Session.CurrentUser(ctx, c)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return upstreamError(c, err)
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil || req.Payload == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	flow := checkout.NewFlow(h.Bookings, h.Payments)
	res, err := flow.Run(ctx, *user, req.Payload, req.Card)
	switch {
	case errors.Is(err, checkout.ErrMissingCardFields),
		errors.Is(err, checkout.ErrMissingMovie),
		errors.Is(err, checkout.ErrMissingShowtime),
		errors.Is(err, checkout.ErrNoSeats),
		errors.Is(err, checkout.ErrQuantityMismatch),
		errors.Is(err, checkout.ErrZeroAmount):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, checkout.ErrPaymentFailed):
		// The booking exists without a payment.  Resubmitting the whole
		// flow may create a duplicate booking; that risk is accepted.
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":     "payment failed, you have not been charged",
			"bookingId": res.BookingID,
		})
	case err != nil:
		return upstreamError(c, err)
	}

	// Best-effort event for downstream consumers.  A publish failure is
	// logged inside the publisher and never fails the sale.
	pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue.PublishBookingConfirmed(pubCtx, queue.BookingConfirmedEvent{
		BookingID:     res.BookingID,
		UserID:        user.ID,
		MovieID:       req.Payload.Context.MovieID,
		MovieTitle:    req.Payload.Context.MovieTitle,
		ShowtimeID:    req.Payload.Context.ShowtimeID,
		CinemaName:    req.Payload.Context.CinemaName,
		ShowDate:      req.Payload.Context.ShowDate,
		ShowTime:      req.Payload.Context.ShowTime,
		Seats:         req.Payload.Seats,
		AmountCents:   res.AmountCents,
		TransactionID: res.TransactionID,
		Confirmed:     res.Confirmed,
		CompletedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"bookingId":     res.BookingID,
		"paymentId":     res.PaymentID,
		"transactionId": res.TransactionID,
		"amountCents":   res.AmountCents,
		"confirmed":     res.Confirmed,
		"next":          "/profile",
	})
}
