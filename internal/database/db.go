// Package database provides the sqlite-backed preference persistence.
// Training data is deliberately not stored here; only the settings
// document survives a restart.
package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection used for preference persistence.
type Database struct {
	DB *sql.DB
}

// Open opens (or creates) the preferences database and ensures the schema.
func Open(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapSettingsErr("open", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrapSettingsErr("ping", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.Exec(query); err != nil {
			return wrapSettingsErr("migrate", err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}
