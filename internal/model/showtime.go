package model

// Showtime mirrors the showtime service's representation of one
// scheduled screening.  Seat availability and pricing are scoped to a
// showtime, never to a movie.
type Showtime struct {
	ID             uint64 `json:"id"`
	MovieID        uint64 `json:"movieId"`
	TheaterID      uint64 `json:"theaterId"`
	CinemaName     string `json:"cinemaName"`
	CinemaLocation string `json:"cinemaLocation"`
	Date           string `json:"date"` // ISO date (YYYY-MM-DD)
	Time           string `json:"time"` // e.g. "09:00 AM"
	ScreenType     string `json:"screenType"`
	PriceCents     uint32 `json:"priceCents"`     // full-ticket base price
	HalfPriceCents uint32 `json:"halfPriceCents"` // zero when not priced explicitly
}

// ShowtimeContext is the normalized navigation payload carried from the
// movie detail screen into the booking flow.  Historically this context
// arrived as a loose bag of optional fields whose shape depended on the
// screen that produced it; it is now constructed exactly once at the
// movie-detail exit point so downstream consumers never re-derive it
// defensively.
type ShowtimeContext struct {
	MovieID        uint64 `json:"movieId"`
	MovieTitle     string `json:"movieTitle"`
	MovieLanguage  string `json:"movieLanguage"`
	ShowtimeID     uint64 `json:"showtimeId"`
	CinemaName     string `json:"cinemaName"`
	CinemaLocation string `json:"cinemaLocation"`
	ShowDate       string `json:"showDate"`
	ShowTime       string `json:"showTime"`
}

// NewShowtimeContext builds the context from its two upstream sources.
func NewShowtimeContext(m Movie, s Showtime) ShowtimeContext {
	return ShowtimeContext{
		MovieID:        m.ID,
		MovieTitle:     m.Title,
		MovieLanguage:  m.Language,
		ShowtimeID:     s.ID,
		CinemaName:     s.CinemaName,
		CinemaLocation: s.CinemaLocation,
		ShowDate:       s.Date,
		ShowTime:       s.Time,
	}
}
