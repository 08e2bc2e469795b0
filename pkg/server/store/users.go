package store

import (
	"context"
	"errors"

	"github.com/satchelhq/satchel/pkg/model"
)

// ErrDuplicateUsername is returned when the username is already taken.
// This is the only creation error surfaced in detail to the caller.
var ErrDuplicateUsername = errors.New("username already taken")

// ErrUserCreateFailed is returned for any other persistence failure during
// registration. The underlying cause is logged, not propagated.
var ErrUserCreateFailed = errors.New("user creation failed")

// ErrInvalidCredentials is returned uniformly for a missing user and a
// wrong password so the two cases cannot be distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is returned when a user id resolves to no row.
var ErrUserNotFound = errors.New("user not found")

// UsersStore abstracts user registration, authentication and lookup.
type UsersStore interface {
	// CreateUser hashes the raw password and inserts the user, returning
	// the new user id. Returns ErrDuplicateUsername if the username
	// exists, ErrUserCreateFailed for any other persistence failure.
	CreateUser(ctx context.Context, firstName, lastName, username, rawPassword string) (int64, error)

	// Authenticate verifies a username/password pair and returns the user
	// id. Returns ErrInvalidCredentials on a missing user or a failed
	// password check, without distinguishing the two.
	Authenticate(ctx context.Context, username, rawPassword string) (int64, error)

	// ByID looks a user up by id. Returns ErrUserNotFound if absent.
	ByID(ctx context.Context, id int64) (*model.User, error)
}
