//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"example.com/fittrack/internal/kv"
	"example.com/fittrack/internal/kv/kvtest"
)

func TestPostgresMediumContract(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fittrack"),
		postgrescontainer.WithUsername("platform"),
		postgrescontainer.WithPassword("platform"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := Open(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	kvtest.RunContract(t, func(t *testing.T) kv.Medium {
		_, err := m.pool.Exec(ctx, `TRUNCATE kv_tables`)
		require.NoError(t, err)
		return m
	})

	t.Run("schema is idempotent", func(t *testing.T) {
		require.NoError(t, m.EnsureSchema(ctx))
	})
}
