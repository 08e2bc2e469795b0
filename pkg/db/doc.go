// Package db provides database connection utilities for Satchel.
//
// This package handles PostgreSQL database connections using GORM.
//
// # Connection
//
//	database, err := db.Connect(db.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
package db
