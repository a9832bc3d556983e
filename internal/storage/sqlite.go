package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQL persists the KV surface in sqlite so preferences and the session
// survive restarts, the way the browser original leaned on localStorage.
type SQL struct{ db *sqlx.DB }

func NewSQL(db *sqlx.DB) (*SQL, error) {
	schema := `
	CREATE TABLE IF NOT EXISTS client_storage(
	  key TEXT PRIMARY KEY,
	  value TEXT NOT NULL,
	  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Get(key string) (string, error) {
	var v string
	err := s.db.Get(&v, `SELECT value FROM client_storage WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return v, err
}

func (s *SQL) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO client_storage(key, value, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (s *SQL) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM client_storage WHERE key = ?`, key)
	return err
}
