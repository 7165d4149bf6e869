// Package queue defines message payloads exchanged over the message
// broker and the best-effort publisher for them.
package queue

// BookingConfirmedEvent is published after the payment flow completes.
// It carries enough for downstream consumers (notifications, analytics)
// to act without querying the booking or payment services.
type BookingConfirmedEvent struct {
	BookingID     uint64   `json:"booking_id"`
	UserID        uint64   `json:"user_id"`
	MovieID       uint64   `json:"movie_id"`
	MovieTitle    string   `json:"movie_title"`
	ShowtimeID    uint64   `json:"showtime_id"`
	CinemaName    string   `json:"cinema_name"`
	ShowDate      string   `json:"show_date"`
	ShowTime      string   `json:"show_time"`
	Seats         []string `json:"seats"`
	AmountCents   uint32   `json:"amount_cents"`
	TransactionID string   `json:"transaction_id"`
	Confirmed     bool     `json:"confirmed"` // false when the status flip lagged
	CompletedAt   string   `json:"completed_at"`
}
