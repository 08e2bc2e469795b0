package endpoints

import (
	"net/http"
	"time"

	"github.com/satchelhq/satchel/pkg/server"
	"github.com/satchelhq/satchel/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	TokenExpiresAt string `json:"tokenExpiresAt,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	session := middleware.NewSession(s.Minter, s.Users)

	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(session.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		resp := WhoamiResponse{
			UserID:   id.UserID,
			Username: id.Username,
		}
		if !id.ExpiresAt.IsZero() {
			resp.TokenExpiresAt = id.ExpiresAt.UTC().Format(time.RFC3339)
		}

		respondWithJSON(w, http.StatusOK, resp)
	}
}
