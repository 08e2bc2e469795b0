package gorm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/satchelhq/satchel/pkg/model"
	"github.com/satchelhq/satchel/pkg/server/store"
)

// Ensure InventoryStore implements store.InventoryStore
var _ store.InventoryStore = (*InventoryStore)(nil)

// InventoryStore implements store.InventoryStore using GORM
type InventoryStore struct {
	db *gorm.DB
}

// NewInventoryStore creates a new InventoryStore
func NewInventoryStore(db *gorm.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

// Batch adds run at repeatable read so concurrent batches touching the
// same rows cannot lose increments.
var batchTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}

// getOrCreateItem resolves a name to its catalog entry inside tx, creating
// the entry on first reference. Creation uses ON CONFLICT DO NOTHING so a
// concurrent writer racing on the same new name never raises a unique
// violation (which would abort the enclosing transaction); whoever wins,
// the follow-up select returns the surviving row.
func getOrCreateItem(tx *gorm.DB, name, description string) (*model.Item, error) {
	if name == "" {
		return nil, store.ErrEmptyItemName
	}

	var item model.Item
	err := tx.Where("name = ?", name).First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = tx.Exec(`
		INSERT INTO items (id, name, description) VALUES (?, ?, ?)
		ON CONFLICT (name) DO NOTHING
	`, uuid.New(), name, description).Error
	if err != nil {
		return nil, err
	}

	var created model.Item
	if err := tx.Where("name = ?", name).First(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch item %q after insert: %w", name, err)
	}
	return &created, nil
}

// incrementRecord upserts the (user, item) inventory record, starting at
// quantity 1 on first add and incrementing by one thereafter.
func incrementRecord(tx *gorm.DB, userID int64, itemID uuid.UUID) error {
	return tx.Exec(`
		INSERT INTO inventory (user_id, item_id, quantity) VALUES (?, ?, 1)
		ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = inventory.quantity + 1
	`, userID, itemID).Error
}

// GetOrCreateItem resolves a name to its catalog entry, creating it on
// first reference.
func (s *InventoryStore) GetOrCreateItem(ctx context.Context, name, description string) (*model.Item, error) {
	return getOrCreateItem(s.db.WithContext(ctx), name, description)
}

// AddItem increments the user's quantity of the named item by one. The
// catalog lookup-or-create and the increment share one transaction.
func (s *InventoryStore) AddItem(ctx context.Context, userID int64, name, description string) (*model.Item, error) {
	var item *model.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = getOrCreateItem(tx, name, description)
		if err != nil {
			return err
		}
		return incrementRecord(tx, userID, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AddItems stages every entry inside one all-or-nothing transaction. The
// first failing entry aborts; remaining entries are not processed and all
// staged writes are rolled back.
func (s *InventoryStore) AddItems(ctx context.Context, userID int64, entries []store.ItemInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			item, err := getOrCreateItem(tx, entry.Name, entry.Description)
			if err != nil {
				return fmt.Errorf("batch add failed on item %q: %w", entry.Name, err)
			}
			if err := incrementRecord(tx, userID, item.ID); err != nil {
				return fmt.Errorf("batch add failed on item %q: %w", entry.Name, err)
			}
		}
		return nil
	}, batchTxOptions)
}

// SubtractItem floors the quantity at zero; subtracting more than is held
// clamps rather than erroring. An absent record is a no-op.
func (s *InventoryStore) SubtractItem(ctx context.Context, userID int64, itemID uuid.UUID, amount int) ([]store.InventoryEntry, error) {
	err := s.db.WithContext(ctx).Exec(`
		UPDATE inventory SET quantity = GREATEST(quantity - ?, 0)
		WHERE user_id = ? AND item_id = ?
	`, amount, userID, itemID).Error
	if err != nil {
		return nil, err
	}
	return s.UserInventory(ctx, userID)
}

// UserInventory returns every record belonging to the user, zero-quantity
// records included.
func (s *InventoryStore) UserInventory(ctx context.Context, userID int64) ([]store.InventoryEntry, error) {
	var entries []store.InventoryEntry
	err := s.db.WithContext(ctx).
		Model(&model.InventoryRecord{}).
		Select("item_id", "quantity").
		Where("user_id = ?", userID).
		Order("item_id").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
