package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// Credentials is the login payload forwarded verbatim to the user
// service.  The gateway never inspects or stores the password.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the signup payload forwarded to the user service.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what the user service hands back on a successful
// login or registration: the signed token plus the public user record.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// UserClient talks to the user service.
type UserClient struct {
	base
}

// NewUserClient builds a UserClient against the given base URL.
func NewUserClient(baseURL string, hc *http.Client) *UserClient {
	return &UserClient{base: newBase(baseURL, hc)}
}

// Login exchanges credentials for a token.  Token handling is a pure
// passthrough; verification of later requests uses the shared signing
// secret.
func (c *UserClient) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account.
func (c *UserClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches the public record of one user.
func (c *UserClient) Get(ctx context.Context, userID uint64) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
