// Package model defines the database models for Satchel.
//
// This package contains GORM models that map to the Satchel PostgreSQL
// schema. Relations are expressed as plain foreign-key fields; there are
// no navigation properties and no in-memory object graph.
//
// # Core Models
//
//   - User: registered account with a bcrypt password hash
//   - RefreshToken: long-lived opaque credential owned by a user
//   - Item: deduplicated catalog entry, unique by name
//   - InventoryRecord: quantity a user holds of an item, keyed by
//     (user_id, item_id)
package model
