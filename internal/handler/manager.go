package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// ManagerHandler exposes the theater-manager back office: movie and
// showtime maintenance, proxied to the owning services.  The role
// middleware has already guaranteed a THEATER_MANAGER token by the time
// these run.
type ManagerHandler struct {
	Movies    *client.MovieClient    // movie service client
	Showtimes *client.ShowtimeClient // showtime service client
}

// NewManagerHandler constructs a ManagerHandler and panics on nil clients.
func NewManagerHandler(movies *client.MovieClient, showtimes *client.ShowtimeClient) *ManagerHandler {
	if movies == nil || showtimes == nil {
		panic("nil client passed to NewManagerHandler")
	}
	return &ManagerHandler{Movies: movies, Showtimes: showtimes}
}

// CreateMovie handles POST /v1/manager/movies.
func (h *ManagerHandler) CreateMovie(c echo.Context) error {
	var m model.Movie
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if m.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	created, err := h.Movies.Create(c.Request().Context(), m)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": created})
}

// UpdateMovie handles PUT /v1/manager/movies/:id.
func (h *ManagerHandler) UpdateMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var m model.Movie
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m.ID = id
	updated, err := h.Movies.Update(c.Request().Context(), m)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": updated})
}

// DeleteMovie handles DELETE /v1/manager/movies/:id.
func (h *ManagerHandler) DeleteMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
		return upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateShowtime handles POST /v1/manager/showtimes.
func (h *ManagerHandler) CreateShowtime(c echo.Context) error {
	var s model.Showtime
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if s.MovieID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movieId is required"})
	}
	created, err := h.Showtimes.Create(c.Request().Context(), s)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": created})
}

// UpdateShowtime handles PUT /v1/manager/showtimes/:id.
func (h *ManagerHandler) UpdateShowtime(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	var s model.Showtime
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s.ID = id
	updated, err := h.Showtimes.Update(c.Request().Context(), s)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": updated})
}

// DeleteShowtime handles DELETE /v1/manager/showtimes/:id.
func (h *ManagerHandler) DeleteShowtime(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	if err := h.Showtimes.Delete(c.Request().Context(), id); err != nil {
		return upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
