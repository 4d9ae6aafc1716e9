// Package backend opens the kv.Medium selected by configuration and builds the record store on it.
package backend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"example.com/fittrack/internal/config"
	"example.com/fittrack/internal/kv"
	"example.com/fittrack/internal/kv/bolt"
	"example.com/fittrack/internal/kv/postgres"
	"example.com/fittrack/internal/kv/redis"
	"example.com/fittrack/internal/kv/sqlite"
	"example.com/fittrack/internal/store"
)

// Supported backend names.
const (
	Memory   = "memory"
	Bolt     = "bolt"
	SQLite   = "sqlite"
	Redis    = "redis"
	Postgres = "postgres"
)

// Open returns the medium named by cfg.Backend and a function releasing it.
func Open(ctx context.Context, cfg config.Config) (kv.Medium, func() error, error) {
	switch cfg.Backend {
	case Memory:
		return kv.NewMemoryMedium(), func() error { return nil }, nil
	case Bolt, "":
		m, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	case SQLite:
		m, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	case Redis:
		m, err := redis.Open(ctx, cfg.RedisURL, redis.WithKeyPrefix(cfg.RedisKeyPrefix))
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	case Postgres:
		m, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// StoreOptions translates cfg into record store options.
func StoreOptions(cfg config.Config, logger zerolog.Logger) ([]store.Option, error) {
	policy, err := store.ParseCorruptPolicy(cfg.CorruptPolicy)
	if err != nil {
		return nil, err
	}
	opts := []store.Option{
		store.WithLogger(logger),
		store.WithCorruptPolicy(policy),
	}
	if cfg.StrictIDs {
		opts = append(opts, store.WithStrictIDs())
	}
	return opts, nil
}
