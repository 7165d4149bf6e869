package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// CreatePaymentRequest is the payment service's create payload.  The
// transaction id is generated by the gateway before the call so a charge
// can be traced even if the response is lost.
type CreatePaymentRequest struct {
	BookingID     uint64 `json:"bookingId"`
	UserID        uint64 `json:"userId"`
	AmountCents   uint32 `json:"amountCents"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	TransactionID string `json:"transactionId"`
}

// PaymentClient talks to the payment service.
type PaymentClient struct {
	base
}

// NewPaymentClient builds a PaymentClient against the given base URL.
func NewPaymentClient(baseURL string, hc *http.Client) *PaymentClient {
	return &PaymentClient{base: newBase(baseURL, hc)}
}

// Create records one captured payment and returns its identity.
func (c *PaymentClient) Create(ctx context.Context, req CreatePaymentRequest) (uint64, error) {
	var out struct {
		PaymentID uint64 `json:"paymentId"`
		ID        uint64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "", req, &out); err != nil {
		return 0, err
	}
	if out.PaymentID != 0 {
		return out.PaymentID, nil
	}
	return out.ID, nil
}

// ListByUser fetches the payments belonging to one user.
func (c *PaymentClient) ListByUser(ctx context.Context, userID uint64) ([]model.Payment, error) {
	var out []model.Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByBooking fetches the payments recorded against one booking.
func (c *PaymentClient) ListByBooking(ctx context.Context, bookingID uint64) ([]model.Payment, error) {
	var out []model.Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/booking/%d", bookingID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
