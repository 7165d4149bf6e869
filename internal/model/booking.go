package model

// Booking status labels as the booking service defines them.  A booking
// is created APPROVED and flipped to CONFIRMED once its payment has been
// recorded; a CONFIRMED flip that fails is tolerated, so an APPROVED
// booking with a payment attached is still a completed sale.
const (
	BookingStatusApproved  = "APPROVED"
	BookingStatusConfirmed = "CONFIRMED"
)

// Booking mirrors the booking service's record.  The gateway holds
// read-only copies for the profile screen and never reconciles them
// against concurrent writes.
type Booking struct {
	ID            uint64   `json:"id"`
	UserID        uint64   `json:"userId"`
	MovieID       uint64   `json:"movieId"`
	ShowtimeID    uint64   `json:"showtimeId"`
	SeatsSelected []string `json:"seatsSelected"`
	TotalAdults   int      `json:"totalAdults"`   // full-price tickets
	TotalChildren int      `json:"totalChildren"` // half-price tickets
	Status        string   `json:"status"`
	ShowDate      string   `json:"showDate"`
	CreatedAt     string   `json:"createdAt"`
}
