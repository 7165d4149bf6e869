package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
)

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// upstreamError translates a backend failure into the gateway's
// response.  Client-side mistakes the backend flagged (4xx) pass
// through with their message; anything else, including timeouts,
// becomes a 502 so callers can tell a broken backend from a broken
// request.
func upstreamError(c echo.Context, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return c.JSON(apiErr.StatusCode, echo.Map{"error": apiErr.Message})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
}
