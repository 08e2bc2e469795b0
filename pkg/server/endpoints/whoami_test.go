package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoamiEndpoint(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		srv := newTestServer(t)

		req := authedRequest(t, srv, "GET", "/whoami", nil, 1)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp WhoamiResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.UserID)
		assert.Equal(t, "alice", resp.Username)
		assert.NotEmpty(t, resp.TokenExpiresAt)
	})

	t.Run("no token", func(t *testing.T) {
		srv := newTestServer(t)

		req := httptest.NewRequest("GET", "/whoami", nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
