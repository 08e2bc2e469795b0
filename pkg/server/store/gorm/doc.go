// Package gorm implements the store interfaces using GORM against
// PostgreSQL.
//
// The database is the sole source of mutual exclusion: every logical
// mutation runs inside its own transaction, batch adds use repeatable
// read isolation, and catalog deduplication relies on the unique index on
// items.name with a re-fetch on conflict.
package gorm
