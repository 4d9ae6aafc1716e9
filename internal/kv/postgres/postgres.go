// Package postgres persists record tables as rows of a key/value table in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Medium stores each blob as one kv_tables row.
type Medium struct {
	pool *pgxpool.Pool
}

// Open connects to url and ensures the schema exists.
func Open(ctx context.Context, url string) (*Medium, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	m := NewMedium(pool)
	if err := m.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return m, nil
}

// NewMedium wraps an existing pool. The caller owns the pool.
func NewMedium(pool *pgxpool.Pool) *Medium {
	return &Medium{pool: pool}
}

// EnsureSchema creates kv_tables when missing.
func (m *Medium) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS kv_tables (
        key        TEXT PRIMARY KEY,
        value      TEXT NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`
	if _, err := m.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create kv_tables: %w", err)
	}
	return nil
}

// Close closes the pool.
func (m *Medium) Close() error {
	m.pool.Close()
	return nil
}

// Get implements kv.Medium.
func (m *Medium) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.pool.QueryRow(ctx, `SELECT value FROM kv_tables WHERE key=$1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set implements kv.Medium.
func (m *Medium) Set(ctx context.Context, key, value string) error {
	const stmt = `INSERT INTO kv_tables (key, value, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	_, err := m.pool.Exec(ctx, stmt, key, value)
	return err
}

// Remove implements kv.Medium.
func (m *Medium) Remove(ctx context.Context, key string) error {
	_, err := m.pool.Exec(ctx, `DELETE FROM kv_tables WHERE key=$1`, key)
	return err
}
