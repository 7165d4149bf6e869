// Package pricing holds the category allocation state for the booking
// screen.  The ticketing backend bills per category rather than per seat,
// so a selection of N seats must be split into full and half priced
// tickets whose quantities sum to exactly N before checkout can proceed.
package pricing

// HalfPriceNumerator and HalfPriceDenominator encode the fixed business
// rule that a half ticket costs 77% of a full ticket when the showtime
// does not carry an explicit half price.  The ratio is preserved as-is
// from the ticketing operator's price card; do not re-derive it.
const (
	HalfPriceNumerator   = 77
	HalfPriceDenominator = 100
)

// VATRatePercent is the VAT rate shown on the purchase summary.  The
// charged amount stays the ticket total; VAT is display-only.
const VATRatePercent = 8

// DefaultHalfPrice returns the derived half-ticket price in cents for a
// given full-ticket price.
func DefaultHalfPrice(fullCents uint32) uint32 {
	return uint32(uint64(fullCents) * HalfPriceNumerator / HalfPriceDenominator)
}

// Allocation tracks how a fixed number of selected seats is split across
// the two price tiers.  The coupled-adjustment rule keeps the two
// quantities summing to the seat count after every single edit, so no
// "remaining seats" indicator is ever needed.
type Allocation struct {
	seats          int    // |selection|, fixed for the lifetime of the allocation
	qtyFull        int    // full-price tickets, always in [0, seats]
	qtyHalf        int    // half-price tickets, always in [0, seats]
	priceFullCents uint32 // unit price of a full ticket
	priceHalfCents uint32 // unit price of a half ticket
}

// NewAllocation creates an all-zero allocation for the given seat count.
// priceHalfCents may be zero, in which case the 77% rule applies.  A
// negative seat count is treated as zero.
func NewAllocation(seats int, priceFullCents, priceHalfCents uint32) *Allocation {
	if seats < 0 {
		seats = 0
	}
	if priceHalfCents == 0 {
		priceHalfCents = DefaultHalfPrice(priceFullCents)
	}
	return &Allocation{
		seats:          seats,
		priceFullCents: priceFullCents,
		priceHalfCents: priceHalfCents,
	}
}

// clamp bounds v to [0, seats].
func (a *Allocation) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > a.seats {
		return a.seats
	}
	return v
}

// SetFull sets the full-ticket quantity and adjusts the half quantity so
// the two always sum to the seat count.
func (a *Allocation) SetFull(v int) {
	a.qtyFull = a.clamp(v)
	a.qtyHalf = a.seats - a.qtyFull
}

// SetHalf sets the half-ticket quantity and adjusts the full quantity so
// the two always sum to the seat count.
func (a *Allocation) SetHalf(v int) {
	a.qtyHalf = a.clamp(v)
	a.qtyFull = a.seats - a.qtyHalf
}

// Seats returns the fixed seat count the allocation was created for.
func (a *Allocation) Seats() int { return a.seats }

// QtyFull returns the current full-ticket quantity.
func (a *Allocation) QtyFull() int { return a.qtyFull }

// QtyHalf returns the current half-ticket quantity.
func (a *Allocation) QtyHalf() int { return a.qtyHalf }

// PriceFullCents returns the unit price of a full ticket.
func (a *Allocation) PriceFullCents() uint32 { return a.priceFullCents }

// PriceHalfCents returns the unit price of a half ticket.
func (a *Allocation) PriceHalfCents() uint32 { return a.priceHalfCents }

// CanConfirm reports whether the allocation may proceed to checkout.
// Given the coupled-adjustment rule this is only false before the first
// edit (both quantities zero with seats selected) or when nothing is
// selected at all.
func (a *Allocation) CanConfirm() bool {
	return a.seats > 0 && a.qtyFull+a.qtyHalf == a.seats
}

// TicketTotalCents returns the amount actually charged for the tickets.
func (a *Allocation) TicketTotalCents() uint32 {
	return uint32(uint64(a.qtyFull)*uint64(a.priceFullCents) +
		uint64(a.qtyHalf)*uint64(a.priceHalfCents))
}

// VATCents returns the VAT shown on the purchase summary.
func (a *Allocation) VATCents() uint32 {
	return uint32(uint64(a.TicketTotalCents()) * VATRatePercent / 100)
}

// TotalWithVATCents returns ticket total plus VAT for display.
func (a *Allocation) TotalWithVATCents() uint32 {
	return a.TicketTotalCents() + a.VATCents()
}

// Reset discards the split, returning both quantities to zero.  Used when
// the category step is cancelled; the seat selection itself is untouched.
func (a *Allocation) Reset() {
	a.qtyFull = 0
	a.qtyHalf = 0
}
