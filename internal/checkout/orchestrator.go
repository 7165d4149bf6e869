package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// State tracks where a payment flow is.  Transitions only ever move
// forward; a step failure returns the flow to StateIdle so the user can
// resubmit from scratch.
type State int

const (
	StateIdle State = iota
	StateCreatingBooking
	StateRecordingPayment
	StateConfirmingBooking
	StateDone
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCreatingBooking:
		return "CreatingBooking"
	case StateRecordingPayment:
		return "RecordingPayment"
	case StateConfirmingBooking:
		return "ConfirmingBooking"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrMissingCardFields is the precondition error for an incomplete card
// form.  It is raised before any remote call.
var ErrMissingCardFields = errors.New("checkout: card number, name, expiry and cvv are required")

// ErrPaymentFailed wraps a payment-service failure.  By the time it is
// returned a booking already exists and is deliberately not rolled back;
// the orphaned booking id travels in the Result so the failure can be
// reported precisely.
var ErrPaymentFailed = errors.New("checkout: payment was not recorded")

// Card is the card form as submitted.  Only presence is validated; real
// card validation belongs to the payment service.
type Card struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Method string `json:"method"` // visa or mastercard
}

// complete reports whether every required field carries a value.
func (c Card) complete() bool {
	return strings.TrimSpace(c.Number) != "" &&
		strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Expiry) != "" &&
		strings.TrimSpace(c.CVV) != ""
}

// BookingService is the slice of the booking client the flow depends on.
type BookingService interface {
	Create(ctx context.Context, req client.CreateBookingRequest) (uint64, error)
	UpdateStatus(ctx context.Context, bookingID uint64, status string) error
}

// PaymentService is the slice of the payment client the flow depends on.
type PaymentService interface {
	Create(ctx context.Context, req client.CreatePaymentRequest) (uint64, error)
}

// Result reports what the flow produced.  On a payment-step failure the
// BookingID is still populated: the booking it names exists on the
// backend without a payment attached.
type Result struct {
	BookingID     uint64 `json:"bookingId"`
	PaymentID     uint64 `json:"paymentId"`
	TransactionID string `json:"transactionId"`
	AmountCents   uint32 `json:"amountCents"`
	Confirmed     bool   `json:"confirmed"` // false when the status flip was skipped or failed
}

// Flow sequences the three dependent calls that turn a checkout payload
// into a sale: create booking, record payment, confirm booking.  The
// steps run strictly one after another because each step's output feeds
// the next; there is no mid-flight cancellation and no automatic retry.
//
// Failure semantics are deliberately asymmetric and must stay that way:
//   - booking create fails: nothing was persisted, flow returns to Idle.
//   - payment create fails: the booking from step one is NOT rolled
//     back.  This orphan window is an accepted limitation, not a bug.
//   - confirm fails: booking and payment both exist, the user still gets
//     a success; the status label may lag behind reality.
//
// A Flow serves exactly one submission; build a fresh one per request.
type Flow struct {
	bookings BookingService
	payments PaymentService
	state    State
}

// NewFlow builds an idle flow over the two services.  Panics on nil
// dependencies.
func NewFlow(bookings BookingService, payments PaymentService) *Flow {
	if bookings == nil || payments == nil {
		panic("nil service passed to NewFlow")
	}
	return &Flow{bookings: bookings, payments: payments, state: StateIdle}
}

// State returns the flow's current position.
func (f *Flow) State() State { return f.state }

// Run executes the whole flow for a validated user.  Precondition
// failures (bad card, bad payload) leave the flow Idle without touching
// the network.
func (f *Flow) Run(ctx context.Context, user model.User, p *Payload, card Card) (*Result, error) {
	if !card.complete() {
		return nil, ErrMissingCardFields
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	method := card.Method
	if method == "" {
		method = model.PaymentMethodVisa
	}

	// Step one: create the booking in APPROVED status.
	f.state = StateCreatingBooking
	bookingID, err := f.bookings.Create(ctx, client.CreateBookingRequest{
		UserID:        user.ID,
		MovieID:       p.Context.MovieID,
		ShowtimeID:    p.Context.ShowtimeID,
		SeatsSelected: p.Seats,
		TotalAdults:   p.QtyFull,
		TotalChildren: p.QtyHalf,
		ShowDate:      p.Context.ShowDate,
		Status:        model.BookingStatusApproved,
	})
	if err != nil {
		f.state = StateIdle
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Step two: record the payment against the new booking.  From here
	// on a failure leaves the booking behind on purpose.
	f.state = StateRecordingPayment
	txID := NewTransactionID()
	paymentID, err := f.payments.Create(ctx, client.CreatePaymentRequest{
		BookingID:     bookingID,
		UserID:        user.ID,
		AmountCents:   p.TicketTotalCents,
		PaymentMethod: method,
		PaymentStatus: model.PaymentStatusCompleted,
		TransactionID: txID,
	})
	if err != nil {
		f.state = StateIdle
		log.Printf("checkout: payment failed for booking %d (user %d): %v", bookingID, user.ID, err)
		return &Result{BookingID: bookingID, TransactionID: txID, AmountCents: p.TicketTotalCents},
			fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	// Step three: flip the booking to CONFIRMED, best effort.  Payment
	// recorded already means the user is committed; the label refresh
	// may lag.
	f.state = StateConfirmingBooking
	confirmed := true
	if err := f.bookings.UpdateStatus(ctx, bookingID, model.BookingStatusConfirmed); err != nil {
		confirmed = false
		log.Printf("checkout: booking %d paid but not confirmed: %v", bookingID, err)
	}

	f.state = StateDone
	return &Result{
		BookingID:     bookingID,
		PaymentID:     paymentID,
		TransactionID: txID,
		AmountCents:   p.TicketTotalCents,
		Confirmed:     confirmed,
	}, nil
}

// NewTransactionID returns the identifier recorded with a payment.  It
// is generated before the payment call so a charge stays traceable even
// when the response is lost.
func NewTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString())
}
