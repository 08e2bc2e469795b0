// Package token mints and verifies Satchel credentials.
//
// Access tokens are HS256-signed JWTs carrying the user id in an "id"
// claim with a fixed lifetime. Refresh tokens are opaque random strings;
// their lifecycle lives in the refresh token store, not in this package.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultAccessTokenTTL is the lifetime of an access token.
	DefaultAccessTokenTTL = 60 * time.Minute

	// DefaultRefreshTokenTTL is the lifetime of a refresh token.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	// ErrMissingKey is returned when no signing key is configured. This is
	// a process configuration error and is checked at startup, never per
	// request.
	ErrMissingKey = errors.New("token signing key is not configured")

	// ErrInvalidToken is returned for tokens that fail signature or claim
	// validation, including expired tokens.
	ErrInvalidToken = errors.New("invalid access token")

	// ErrNegativeTTL is returned for a negative access token lifetime.
	ErrNegativeTTL = errors.New("negative access token ttl")
)

// Claims are the JWT claims embedded in an access token.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Minter signs and verifies access tokens with a symmetric key.
type Minter struct {
	key       []byte
	accessTTL time.Duration
}

// NewMinter creates a Minter. The key must be non-empty; a zero accessTTL
// falls back to DefaultAccessTokenTTL and a negative one is rejected.
func NewMinter(key []byte, accessTTL time.Duration) (*Minter, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}
	if accessTTL < 0 {
		return nil, ErrNegativeTTL
	}
	if accessTTL == 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	return &Minter{key: key, accessTTL: accessTTL}, nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (m *Minter) AccessTokenTTL() time.Duration {
	return m.accessTTL
}

// AccessToken mints a signed access token for the given user id.
func (m *Minter) AccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of an access token and returns
// its claims. Expiry is checked with zero clock-skew tolerance.
func (m *Minter) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// NewRefreshToken generates an opaque refresh token: 32 random bytes,
// URL-safe base64 without padding.
func NewRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
