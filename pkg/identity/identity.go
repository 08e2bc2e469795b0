// Package identity carries the resolved identity of an authenticated
// request.
//
// The session middleware verifies the access token, resolves the user and
// stores an Identity in the request context. Handlers retrieve it with Get
// and must treat an absent identity as unauthorized for any operation that
// touches user-owned state.
package identity

import (
	"context"
	"time"
)

// contextKey is a private type so no other package can collide with the
// identity entry in a request context.
type contextKey struct{}

var key contextKey

// Identity is the authenticated principal for a request.
type Identity struct {
	UserID   int64
	Username string

	// Token claims
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Get retrieves the Identity from ctx. The second return value is false
// when the request was not authenticated.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(key).(*Identity)
	return id, ok
}

// Set stores id in ctx.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, key, id)
}
