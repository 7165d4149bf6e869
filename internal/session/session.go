// Package session provides the explicit session context injected into
// the booking and payment flows.  Identity used to be re-derived from
// ambient storage all over the front end; here it is resolved in one
// place from the verified JWT claims plus a short-lived Redis profile
// cache, and handed to flows as a value.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// ErrNoSession is returned when no authenticated identity is present on
// the request.
var ErrNoSession = errors.New("session: no authenticated user")

// profileTTL bounds how long a cached profile may serve before the user
// service is asked again.
const profileTTL = 15 * time.Minute

// Context resolves the current user for a request.  Profiles are cached
// in Redis keyed by user id; a nil Redis client disables the cache and
// every lookup goes to the user service.
type Context struct {
	users *client.UserClient
	rdb   *redis.Client // may be nil
}

// NewContext builds a session context.  Panics on a nil user client.
func NewContext(users *client.UserClient, rdb *redis.Client) *Context {
	if users == nil {
		panic("nil user client passed to NewContext")
	}
	return &Context{users: users, rdb: rdb}
}

// UserID extracts the authenticated user id from the echo context, where
// JWTAuth stored the token's subject claim.  JSON numbers arrive as
// float64; string subjects are parsed.
func UserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, ErrNoSession
}

// CurrentUser returns the full profile of the request's user, from cache
// when fresh, otherwise from the user service.  Returns ErrNoSession
// when the request carries no identity.
func (s *Context) CurrentUser(ctx context.Context, c echo.Context) (*model.User, error) {
	id, err := UserID(c)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("session:user:%d", id)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var u model.User
			if json.Unmarshal(raw, &u) == nil && u.ID != 0 {
				return &u, nil
			}
		}
	}

	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.rdb != nil {
		if raw, err := json.Marshal(u); err == nil {
			_ = s.rdb.Set(ctx, key, raw, profileTTL).Err()
		}
	}
	return u, nil
}
