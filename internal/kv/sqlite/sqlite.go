// Package sqlite persists record tables as rows of a single key/value table in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// SQLite driver
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_tables (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Medium stores each blob as one kv_tables row.
type Medium struct {
	db *sql.DB
}

// Open opens the database at path (":memory:" for a private in-memory database)
// and creates the schema.
func Open(ctx context.Context, path string) (*Medium, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; also keeps ":memory:" bound to a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Medium{db: db}, nil
}

// Close closes the database.
func (m *Medium) Close() error {
	return m.db.Close()
}

// Get implements kv.Medium.
func (m *Medium) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv_tables WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set implements kv.Medium.
func (m *Medium) Set(ctx context.Context, key, value string) error {
	const stmt = `INSERT INTO kv_tables (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := m.db.ExecContext(ctx, stmt, key, value)
	return err
}

// Remove implements kv.Medium.
func (m *Medium) Remove(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM kv_tables WHERE key = ?`, key)
	return err
}
