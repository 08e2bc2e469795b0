package store

import (
	"context"
	"time"
)

// RefreshTokensStore abstracts refresh token persistence.
type RefreshTokensStore interface {
	// Create inserts a refresh token row for the user.
	Create(ctx context.Context, userID int64, token string, expiration time.Time) error

	// IsValid reports whether an unexpired refresh token with that exact
	// string exists and belongs to the given user.
	IsValid(ctx context.Context, userID int64, token string) (bool, error)
}
