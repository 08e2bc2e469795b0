package token

import (
	"context"
	"fmt"
	"time"
)

// RefreshTokenStore is the persistence the Issuer needs for refresh
// tokens. Implemented by the gorm-backed store.
type RefreshTokenStore interface {
	Create(ctx context.Context, userID int64, token string, expiration time.Time) error
}

// Pair bundles a freshly minted access token with a persisted refresh
// token.
type Pair struct {
	AccessToken       string
	RefreshToken      string
	RefreshExpiration time.Time
}

// Issuer mints access/refresh token pairs. There is no cap on the number
// of concurrently valid refresh tokens per user.
type Issuer struct {
	minter     *Minter
	store      RefreshTokenStore
	refreshTTL time.Duration
}

// NewIssuer creates an Issuer. A zero refreshTTL falls back to
// DefaultRefreshTokenTTL.
func NewIssuer(minter *Minter, store RefreshTokenStore, refreshTTL time.Duration) *Issuer {
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &Issuer{minter: minter, store: store, refreshTTL: refreshTTL}
}

// IssuePair mints an access token and a new refresh token for the user,
// persisting the refresh token before returning. A persistence failure
// fails the whole issuance so a client never receives an access token
// backed by no durable refresh token.
func (i *Issuer) IssuePair(ctx context.Context, userID int64) (*Pair, error) {
	access, err := i.minter.AccessToken(userID)
	if err != nil {
		return nil, err
	}

	refresh, err := NewRefreshToken()
	if err != nil {
		return nil, err
	}

	expiration := time.Now().Add(i.refreshTTL)
	if err := i.store.Create(ctx, userID, refresh, expiration); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &Pair{
		AccessToken:       access,
		RefreshToken:      refresh,
		RefreshExpiration: expiration,
	}, nil
}
