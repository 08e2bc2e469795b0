// Package store provides storage abstractions for the Satchel server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - UsersStore: user registration, authentication and lookup
//   - RefreshTokensStore: refresh token persistence and validation
//   - InventoryStore: item catalog plus the per-user inventory ledger
//   - HealthStore: database connectivity checks
//
// # Usage
//
//	users := gorm.NewUsersStore(db)
//	id, err := users.CreateUser(ctx, "Alice", "Smith", "alice", "pw")
//	if err != nil {
//	    if errors.Is(err, store.ErrDuplicateUsername) {
//	        // Handle conflict
//	    }
//	}
package store
