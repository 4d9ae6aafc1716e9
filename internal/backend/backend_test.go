package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"example.com/fittrack/internal/config"
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/store"
)

func TestOpenBackends(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	cases := []config.Config{
		{Backend: Memory},
		{Backend: Bolt, BoltPath: filepath.Join(dir, "fittrack.db")},
		{Backend: SQLite, SQLitePath: filepath.Join(dir, "fittrack.sqlite")},
		{Backend: Redis, RedisURL: "redis://" + mr.Addr(), RedisKeyPrefix: "fittrack:"},
	}

	for _, cfg := range cases {
		t.Run(cfg.Backend, func(t *testing.T) {
			ctx := context.Background()
			medium, closeFn, err := Open(ctx, cfg)
			require.NoError(t, err)
			defer func() { require.NoError(t, closeFn()) }()

			s := store.New(medium)
			run, err := s.Runs.Add(ctx, domain.Run{Name: "Morning", Date: "01/01/2025", Distance: "5.2", DurationSecs: 1800})
			require.NoError(t, err)
			require.Equal(t, 1, run.ID)

			runs, err := s.Runs.List(ctx)
			require.NoError(t, err)
			require.Equal(t, []domain.Run{run}, runs)
		})
	}

	require.True(t, mr.Exists("fittrack:runs_table"))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), config.Config{Backend: "floppy"})
	require.Error(t, err)
}

func TestStoreOptions(t *testing.T) {
	opts, err := StoreOptions(config.Config{CorruptPolicy: "empty", StrictIDs: true}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, opts, 3)

	_, err = StoreOptions(config.Config{CorruptPolicy: "shrug"}, zerolog.Nop())
	require.Error(t, err)
}
