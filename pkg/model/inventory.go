package model

import "github.com/google/uuid"

// InventoryRecord is the quantity a user holds of an item. Absence of a
// record is equivalent to quantity 0. Once created a record is mutated in
// place and persists at quantity 0 rather than being deleted.
type InventoryRecord struct {
	UserID   int64     `gorm:"column:user_id;primaryKey"`
	ItemID   uuid.UUID `gorm:"column:item_id;type:uuid;primaryKey"`
	Quantity int       `gorm:"column:quantity"`
}

func (InventoryRecord) TableName() string {
	return "inventory"
}
