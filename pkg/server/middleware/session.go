package middleware

import (
	"net/http"
	"regexp"

	"github.com/satchelhq/satchel/pkg/identity"
	"github.com/satchelhq/satchel/pkg/server/store"
	"github.com/satchelhq/satchel/pkg/token"
)

var bearerRegex = regexp.MustCompile(`^Bearer\s+(\S+)$`)

// Session resolves an access token to a user identity ahead of every
// handler. It never rejects a request itself: a missing, malformed or
// expired token just means no identity is attached, and each handler
// decides whether that is acceptable. The check is stateless; nothing is
// kept between requests.
type Session struct {
	Minter *token.Minter
	Users  store.UsersStore
}

// NewSession creates the session-validating middleware
func NewSession(minter *token.Minter, users store.UsersStore) *Session {
	return &Session{Minter: minter, Users: users}
}

// Middleware returns an HTTP middleware that attaches the resolved
// identity to the request context.
func (s *Session) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		matches := bearerRegex.FindStringSubmatch(authHeader)
		if len(matches) != 2 {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := s.Minter.Parse(matches[1])
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.Users.ByID(r.Context(), claims.UserID)
		if err != nil {
			// Token is structurally fine but the user is gone.
			next.ServeHTTP(w, r)
			return
		}

		id := &identity.Identity{
			UserID:   user.ID,
			Username: user.Username,
		}
		if claims.IssuedAt != nil {
			id.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}
