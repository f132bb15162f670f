package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteBackend stores keys in a single kv table. It is the primary
// backend: asynchronous from the caller's point of view (every operation
// takes a context) and comfortable with much larger blobs than the file
// backend.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite store at dsn, applies
// recommended pragmas, and ensures the kv schema exists.
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteBackend) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteBackend) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for diagnostics.
func (s *SQLiteBackend) DB() *sql.DB {
	return s.db
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
