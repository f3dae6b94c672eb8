// Package sqlite opens SQLite databases for the translation export.
//
// The pure Go driver (modernc.org/sqlite) is used by default. Building with
// -tags cgo_sqlite (and CGO_ENABLED=1) switches to mattn/go-sqlite3.
// Callers use Open rather than sql.Open so the driver name always matches
// the linked implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// DriverName returns the database/sql driver name of the linked implementation.
func DriverName() string {
	return driverName
}

// DriverType is "purego" or "cgo".
func DriverType() string {
	return driverType
}

// Open opens (creating if needed) the database at path and enables foreign keys.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// A single connection keeps PRAGMA settings in effect for every statement.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys on %s: %w", path, err)
	}
	return db, nil
}

// OpenReadOnly opens an existing database without write access.
func OpenReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// Info describes the linked driver, for "bibleprep version".
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	Package    string `json:"package"`
}

// GetInfo returns the linked driver description.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		Package:    driverPackage,
	}
}
