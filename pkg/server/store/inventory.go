package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/satchelhq/satchel/pkg/model"
)

// ErrEmptyItemName is returned when an item is referenced with an empty
// name. Catalog entries are keyed by name, so a blank one is malformed.
var ErrEmptyItemName = errors.New("item name must not be empty")

// ItemInput names an item in an add request.
type ItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// InventoryEntry is one row of a user's inventory snapshot.
type InventoryEntry struct {
	ItemID   uuid.UUID `json:"itemId"`
	Quantity int       `json:"quantity"`
}

// InventoryStore owns the item catalog and the per-user inventory ledger.
//
// All mutations are atomic: the single add wraps its get-or-create and
// increment in one transaction, and AddItems stages the whole batch in a
// single all-or-nothing transaction. Quantities never go below zero, and
// records persist at quantity 0 once created.
type InventoryStore interface {
	// GetOrCreateItem looks an item up by exact name, creating it on first
	// reference. Concurrent creation of the same name is resolved by the
	// unique index on name: the losing writer re-fetches the winner's row.
	GetOrCreateItem(ctx context.Context, name, description string) (*model.Item, error)

	// AddItem increments the user's quantity of the named item by one,
	// creating the catalog entry and the inventory record as needed.
	AddItem(ctx context.Context, userID int64, name, description string) (*model.Item, error)

	// AddItems processes the entries sequentially inside one transaction.
	// The first failing entry aborts and rolls back every staged write.
	AddItems(ctx context.Context, userID int64, entries []ItemInput) error

	// SubtractItem decrements the user's quantity of an item, flooring at
	// zero. An absent record is a no-op. Returns the user's full
	// inventory after the operation.
	SubtractItem(ctx context.Context, userID int64, itemID uuid.UUID, amount int) ([]InventoryEntry, error)

	// UserInventory returns every inventory record belonging to the user,
	// including zero-quantity records.
	UserInventory(ctx context.Context, userID int64) ([]InventoryEntry, error)
}
