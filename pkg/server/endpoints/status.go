package endpoints

import (
	"net/http"

	"github.com/satchelhq/satchel/pkg/server"
)

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the health endpoint (no auth required)
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/health", handleHealth(s)).Methods("GET")
}

func handleHealth(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Health.CheckConnectivity(r.Context()); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unavailable",
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Database: "ok",
		})
	}
}
