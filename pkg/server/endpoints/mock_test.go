package endpoints

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satchelhq/satchel/pkg/config"
	"github.com/satchelhq/satchel/pkg/server"
	"github.com/satchelhq/satchel/pkg/token"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

// testServer bundles a server wired to mocked stores.
type testServer struct {
	*server.Server
	Users         *MockUsersStore
	RefreshTokens *MockRefreshTokensStore
	Inventory     *MockInventoryStore
	Health        *MockHealthStore
}

// newTestServer creates a server with all stores mocked and all endpoints
// registered.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	minter, err := token.NewMinter(testKey, time.Hour)
	require.NoError(t, err)

	users := NewMockUsersStore()
	refreshTokens := NewMockRefreshTokensStore()
	inventory := NewMockInventoryStore()
	health := NewMockHealthStore()

	issuer := token.NewIssuer(minter, refreshTokens, token.DefaultRefreshTokenTTL)

	cfg := &config.SatchelConfig{DocsEnabled: true}
	s := server.NewServer(minter, issuer, nil, cfg, "127.0.0.1", "0")
	s.Users = users
	s.RefreshTokens = refreshTokens
	s.Inventory = inventory
	s.Health = health

	RegisterAll(s)

	return &testServer{
		Server:        s,
		Users:         users,
		RefreshTokens: refreshTokens,
		Inventory:     inventory,
		Health:        health,
	}
}
