package repos

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS users (
    email VARCHAR(320) PRIMARY KEY,
    password_hash TEXT NOT NULL,
    settings TEXT NOT NULL DEFAULT '{}', -- json encoded models.LightSettings
    created_at TIMESTAMP,
    updated_at TIMESTAMP
  );

  CREATE TABLE IF NOT EXISTS sessions (
    token VARCHAR(36) PRIMARY KEY,
    email VARCHAR(320) NOT NULL REFERENCES users(email) ON DELETE CASCADE,
    created_at TIMESTAMP,
    expires_at TIMESTAMP
  );

  CREATE INDEX IF NOT EXISTS session_expires_at ON sessions(expires_at);
`

// Open opens (or creates) the sqlite database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("Error opening database (%s): %w", path, err)
	}
	// sqlite is single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(initSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("Error initialising schema: %w", err)
	}
	return db, nil
}
