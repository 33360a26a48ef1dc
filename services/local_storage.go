// services/local_storage.go
package services

import (
	"database/sql"
	"errors"
)

// LocalStorage is the SQLite-backed durable key/value store standing in for
// the browser's localStorage. It satisfies SnapshotStore for the session.
type LocalStorage struct {
	db *sql.DB
}

func NewLocalStorage(db *sql.DB) *LocalStorage {
	return &LocalStorage{db: db}
}

// Load returns the value for key and whether it exists.
func (s *LocalStorage) Load(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Save overwrites the value for key.
func (s *LocalStorage) Save(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO local_storage (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

// Delete removes key. Deleting an absent key is not an error.
func (s *LocalStorage) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, key)
	return err
}
