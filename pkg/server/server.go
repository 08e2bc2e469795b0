package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/satchelhq/satchel/pkg/config"
	"github.com/satchelhq/satchel/pkg/server/store"
	"github.com/satchelhq/satchel/pkg/token"
)

// Server bundles the router, the stores and the token machinery. Stores
// are plain interfaces so tests can swap in mocks.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB

	Minter *token.Minter
	Issuer *token.Issuer

	Users         store.UsersStore
	RefreshTokens store.RefreshTokensStore
	Inventory     store.InventoryStore
	Health        store.HealthStore

	Config *config.SatchelConfig

	srv *http.Server
}

// NewServer creates a Server listening on host:port. Stores are attached
// by the caller (see cmd/satchelctl server) before endpoints are
// registered.
func NewServer(minter *token.Minter, issuer *token.Issuer, db *gorm.DB, cfg *config.SatchelConfig, host string, port string) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router: router,
		DB:     db,
		Minter: minter,
		Issuer: issuer,
		Config: cfg,
		srv:    srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
