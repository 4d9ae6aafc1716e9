package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryMediumRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryMedium()

	_, ok, err := m.Get(ctx, "runs_table")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(ctx, "runs_table", `[{"id":1}]`))
	value, ok, err := m.Get(ctx, "runs_table")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, value)
	require.ElementsMatch(t, []string{"runs_table"}, m.Keys())

	require.NoError(t, m.Remove(ctx, "runs_table"))
	_, ok, err = m.Get(ctx, "runs_table")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Remove(ctx, "missing"))
}

func TestMemoryMediumHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemoryMedium()
	require.ErrorIs(t, m.Set(ctx, "k", "v"), context.Canceled)
	_, _, err := m.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, m.Remove(ctx, "k"), context.Canceled)
}
