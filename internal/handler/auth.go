package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
)

// AuthHandler forwards login and registration to the user service.  The
// gateway never sees password hashes and never mints tokens of its own;
// whatever token the user service returns is handed straight back to
// the client.
type AuthHandler struct {
	Users *client.UserClient // user service client
}

// NewAuthHandler constructs an AuthHandler and panics on a nil client.
func NewAuthHandler(users *client.UserClient) *AuthHandler {
	if users == nil {
		panic("nil user client passed to NewAuthHandler")
	}
	return &AuthHandler{Users: users}
}

// Login handles POST /v1/auth/login.  The body is forwarded verbatim;
// 401 from the user service passes through unchanged.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds client.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if creds.Email == "" || creds.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}
	res, err := h.Users.Login(c.Request().Context(), creds)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req client.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password are required"})
	}
	res, err := h.Users.Register(c.Request().Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
