package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry, deduplicated by name. Items are created lazily
// the first time a name is referenced and are never deleted in normal flow.
type Item struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Item) TableName() string {
	return "items"
}
