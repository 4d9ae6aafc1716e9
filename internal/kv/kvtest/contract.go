// Package kvtest holds the behavioural contract every kv.Medium must satisfy.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fittrack/internal/kv"
)

// RunContract exercises the Medium returned by newMedium against the shared contract.
// newMedium must return a fresh, empty medium on each call.
func RunContract(t *testing.T, newMedium func(t *testing.T) kv.Medium) {
	t.Helper()

	t.Run("absent key", func(t *testing.T) {
		m := newMedium(t)
		value, ok, err := m.Get(context.Background(), "runs_table")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		ctx := context.Background()
		m := newMedium(t)
		blob := `[{"id":1,"name":"Morning","date":"01/01/2025","distance":"5.2","duration":"00:30:00","durationSecs":1800,"type":"run"}]`
		require.NoError(t, m.Set(ctx, "runs_table", blob))

		value, ok, err := m.Get(ctx, "runs_table")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, blob, value)
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		ctx := context.Background()
		m := newMedium(t)
		require.NoError(t, m.Set(ctx, "workouts_table", "[]"))
		require.NoError(t, m.Set(ctx, "workouts_table", `[{"id":2}]`))

		value, ok, err := m.Get(ctx, "workouts_table")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `[{"id":2}]`, value)
	})

	t.Run("keys are independent", func(t *testing.T) {
		ctx := context.Background()
		m := newMedium(t)
		require.NoError(t, m.Set(ctx, "runs_table", "runs"))
		require.NoError(t, m.Set(ctx, "workouts_table", "workouts"))
		require.NoError(t, m.Remove(ctx, "runs_table"))

		_, ok, err := m.Get(ctx, "runs_table")
		require.NoError(t, err)
		require.False(t, ok)

		value, ok, err := m.Get(ctx, "workouts_table")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "workouts", value)
	})

	t.Run("remove absent key", func(t *testing.T) {
		m := newMedium(t)
		require.NoError(t, m.Remove(context.Background(), "never_written"))
	})
}
