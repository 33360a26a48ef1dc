// utils/localdb.go
package utils

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SetupLocalDB opens the SQLite database backing client-side durable storage
// (the session snapshot) and ensures the schema exists.
func SetupLocalDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// SQLite is a single writer; cap the pool at one connection.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS local_storage (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return nil, err
	}

	return db, nil
}
