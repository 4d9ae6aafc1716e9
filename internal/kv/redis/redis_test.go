package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"example.com/fittrack/internal/kv"
	"example.com/fittrack/internal/kv/kvtest"
)

func TestRedisMediumContract(t *testing.T) {
	kvtest.RunContract(t, func(t *testing.T) kv.Medium {
		mr := miniredis.RunT(t)
		m, err := Open(context.Background(), "redis://"+mr.Addr())
		require.NoError(t, err)
		t.Cleanup(func() { _ = m.Close() })
		return m
	})
}

func TestRedisMediumKeyPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	m, err := Open(ctx, "redis://"+mr.Addr(), WithKeyPrefix("fittrack:"))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Set(ctx, "runs_table", "[]"))

	stored, err := mr.Get("fittrack:runs_table")
	require.NoError(t, err)
	require.Equal(t, "[]", stored)
	require.False(t, mr.Exists("runs_table"))

	require.NoError(t, m.Remove(ctx, "runs_table"))
	require.False(t, mr.Exists("fittrack:runs_table"))
}

func TestRedisOpenFailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Open(context.Background(), "redis://"+addr)
	require.Error(t, err)
}

func TestRedisOpenRejectsBadURL(t *testing.T) {
	_, err := Open(context.Background(), "not-a-url://")
	require.Error(t, err)
}
