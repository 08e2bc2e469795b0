package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/satchelhq/satchel/pkg/audit"
	"github.com/satchelhq/satchel/pkg/server"
	"github.com/satchelhq/satchel/pkg/server/store"
)

// CreateUserRequest is the body of POST /user/create
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// CreateUserResponse is the success body of POST /user/create
type CreateUserResponse struct {
	UserID int64 `json:"userId"`
}

// AuthenticateRequest is the body of POST /user/authenticate
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticateResponse is the success body of POST /user/authenticate
type AuthenticateResponse struct {
	UserID                 int64  `json:"userId"`
	AccessToken            string `json:"accessToken"`
	RefreshToken           string `json:"refreshToken"`
	RefreshTokenExpiration string `json:"refreshTokenExpiration"`
}

// RefreshResponse is the success body of GET /user/refresh
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// RegisterUserEndpoints registers the unauthenticated /user routes:
// registration, login and access token refresh.
func RegisterUserEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/user/create", handleCreateUser(s)).Methods("POST")
	router.HandleFunc("/user/authenticate", handleAuthenticate(s)).Methods("POST")
	router.HandleFunc("/user/refresh", handleRefresh(s)).Methods("GET")
}

func handleCreateUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		userID, err := s.Users.CreateUser(r.Context(), req.FirstName, req.LastName, req.Username, req.Password)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Action:       audit.ActionRegister,
				Username:     req.Username,
				ClientIP:     getClientIP(r),
				ErrorMessage: err.Error(),
			})
			if errors.Is(err, store.ErrDuplicateUsername) {
				respondWithError(w, http.StatusConflict, err.Error())
				return
			}
			// The cause is already logged by the store; the client only
			// learns that creation failed.
			respondWithError(w, http.StatusBadRequest, "user creation failed")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Action:   audit.ActionRegister,
			Username: req.Username,
			UserID:   userID,
			ClientIP: getClientIP(r),
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, CreateUserResponse{UserID: userID})
	}
}

func handleAuthenticate(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthenticateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		userID, err := s.Users.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Action:       audit.ActionLogin,
				Username:     req.Username,
				ClientIP:     getClientIP(r),
				ErrorMessage: "invalid credentials",
			})
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		pair, err := s.Issuer.IssuePair(r.Context(), userID)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Action:       audit.ActionLogin,
				Username:     req.Username,
				UserID:       userID,
				ClientIP:     getClientIP(r),
				ErrorMessage: err.Error(),
			})
			respondWithError(w, http.StatusInternalServerError, "token issuance failed")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Action:   audit.ActionLogin,
			Username: req.Username,
			UserID:   userID,
			ClientIP: getClientIP(r),
			Success:  true,
		})

		// The access token is also echoed in the response header.
		w.Header().Set("Authorization", "Bearer "+pair.AccessToken)
		respondWithJSON(w, http.StatusOK, AuthenticateResponse{
			UserID:                 userID,
			AccessToken:            pair.AccessToken,
			RefreshToken:           pair.RefreshToken,
			RefreshTokenExpiration: pair.RefreshExpiration.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}

func handleRefresh(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
		refreshToken := r.URL.Query().Get("refreshToken")
		if err != nil || refreshToken == "" {
			respondWithError(w, http.StatusBadRequest, "userId and refreshToken are required")
			return
		}

		valid, err := s.RefreshTokens.IsValid(r.Context(), userID, refreshToken)
		if err != nil || !valid {
			audit.Log(audit.AuthenticateEvent{
				Action:       audit.ActionRefresh,
				UserID:       userID,
				ClientIP:     getClientIP(r),
				ErrorMessage: "invalid or expired refresh token",
			})
			respondWithError(w, http.StatusBadRequest, "invalid or expired refresh token")
			return
		}

		accessToken, err := s.Minter.AccessToken(userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "token issuance failed")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Action:   audit.ActionRefresh,
			UserID:   userID,
			ClientIP: getClientIP(r),
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, RefreshResponse{AccessToken: accessToken})
	}
}
