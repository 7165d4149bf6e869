package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
)

// MovieHandler serves the browse screens: the movie list on the home
// page, the detail view, title search and the showtime picker.  All of
// it is proxied read-only data; the interesting state lives in the
// booking flow, not here.
type MovieHandler struct {
	Movies    *client.MovieClient    // movie service client
	Showtimes *client.ShowtimeClient // showtime service client
}

// NewMovieHandler constructs a MovieHandler and panics on nil clients.
func NewMovieHandler(movies *client.MovieClient, showtimes *client.ShowtimeClient) *MovieHandler {
	if movies == nil || showtimes == nil {
		panic("nil client passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies, Showtimes: showtimes}
}

// List handles GET /v1/movies.  The optional ?genre= query filters by
// genre tag.
func (h *MovieHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if genre := c.QueryParam("genre"); genre != "" {
		items, err := h.Movies.ByGenre(ctx, genre)
		if err != nil {
			return upstreamError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	}
	items, err := h.Movies.List(ctx)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Search handles GET /v1/movies/search?title=...
func (h *MovieHandler) Search(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	items, err := h.Movies.SearchByTitle(c.Request().Context(), title)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	m, err := h.Movies.Get(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": m})
}

// ShowtimesByMovie handles GET /v1/movies/:id/showtimes.  This is the
// movie-detail exit point: the client picks one of these showtimes and
// enters the booking flow with its id.
func (h *MovieHandler) ShowtimesByMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	items, err := h.Showtimes.ByMovie(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetShowtime handles GET /v1/showtimes/:id.
func (h *MovieHandler) GetShowtime(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	s, err := h.Showtimes.Get(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": s})
}
