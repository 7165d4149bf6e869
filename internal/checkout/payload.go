// Package checkout carries a finished seat selection and category split
// into the payment step and runs the booking/payment orchestration
// against the backend services.
package checkout

import (
	"errors"

	"github.com/iliyamo/movie-booking-gateway/internal/model"
	"github.com/iliyamo/movie-booking-gateway/internal/pricing"
)

// Validation errors surfaced before any remote call is made.  Each one
// names the field the payment step refused to guess a default for.
var (
	ErrMissingMovie     = errors.New("checkout: missing movie id")
	ErrMissingShowtime  = errors.New("checkout: missing showtime id")
	ErrNoSeats          = errors.New("checkout: no seats selected")
	ErrQuantityMismatch = errors.New("checkout: category quantities do not match seat count")
	ErrZeroAmount       = errors.New("checkout: charge amount is zero")
)

// Payload is the immutable snapshot handed from the booking screen to
// the payment step.  It is built exactly once, travels as navigation
// state, and is only canonicalized server-side when the booking is
// actually created.  A payload with required fields missing must make
// the payment step refuse rather than fill in defaults.
type Payload struct {
	Context model.ShowtimeContext `json:"context"`

	Seats   []string `json:"seats"`   // selected seat IDs in click order
	QtyFull int      `json:"qtyFull"` // full-price tickets
	QtyHalf int      `json:"qtyHalf"` // half-price tickets

	PriceFullCents    uint32 `json:"priceFullCents"`
	PriceHalfCents    uint32 `json:"priceHalfCents"`
	TicketTotalCents  uint32 `json:"ticketTotalCents"` // the charged amount
	VATCents          uint32 `json:"vatCents"`         // display only
	TotalWithVATCents uint32 `json:"totalWithVatCents"`
}

// BuildPayload snapshots the selection and allocation into a Payload.
// The allocation must be confirmable; callers gate on CanConfirm before
// reaching this point, so a violation here is a programming error and is
// reported as ErrQuantityMismatch.
func BuildPayload(sc model.ShowtimeContext, seats []string, alloc *pricing.Allocation) (*Payload, error) {
	if !alloc.CanConfirm() || alloc.Seats() != len(seats) {
		return nil, ErrQuantityMismatch
	}
	ordered := make([]string, len(seats))
	copy(ordered, seats)
	return &Payload{
		Context:           sc,
		Seats:             ordered,
		QtyFull:           alloc.QtyFull(),
		QtyHalf:           alloc.QtyHalf(),
		PriceFullCents:    alloc.PriceFullCents(),
		PriceHalfCents:    alloc.PriceHalfCents(),
		TicketTotalCents:  alloc.TicketTotalCents(),
		VATCents:          alloc.VATCents(),
		TotalWithVATCents: alloc.TotalWithVATCents(),
	}, nil
}

// Validate re-checks the payload at the payment boundary.  The handoff
// is one-way with no server round-trip, so zeroed fields smuggled in by
// a broken producer must be caught here instead of turning into a free
// or unattributable booking.
func (p *Payload) Validate() error {
	if p.Context.MovieID == 0 {
		return ErrMissingMovie
	}
	if p.Context.ShowtimeID == 0 {
		return ErrMissingShowtime
	}
	if len(p.Seats) == 0 {
		return ErrNoSeats
	}
	if p.QtyFull < 0 || p.QtyHalf < 0 || p.QtyFull+p.QtyHalf != len(p.Seats) {
		return ErrQuantityMismatch
	}
	if p.TicketTotalCents == 0 {
		return ErrZeroAmount
	}
	return nil
}
