package store

import (
	"context"
	"sync"

	"example.com/fittrack/internal/kv"
)

// faultyMedium wraps a MemoryMedium and fails selected calls.
type faultyMedium struct {
	*kv.MemoryMedium

	mu        sync.Mutex
	getErr    error
	setErr    error
	removeErr error
	sets      int
}

func newFaultyMedium() *faultyMedium {
	return &faultyMedium{MemoryMedium: kv.NewMemoryMedium()}
}

func (f *faultyMedium) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	err := f.getErr
	f.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return f.MemoryMedium.Get(ctx, key)
}

func (f *faultyMedium) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	err := f.setErr
	f.sets++
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.MemoryMedium.Set(ctx, key, value)
}

func (f *faultyMedium) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	err := f.removeErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.MemoryMedium.Remove(ctx, key)
}

func (f *faultyMedium) setCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

// gatedMedium blocks Set on one key until release is closed.
type gatedMedium struct {
	*kv.MemoryMedium

	key     string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedMedium(key string) *gatedMedium {
	return &gatedMedium{
		MemoryMedium: kv.NewMemoryMedium(),
		key:          key,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (g *gatedMedium) Set(ctx context.Context, key, value string) error {
	if key == g.key {
		g.once.Do(func() { close(g.entered) })
		select {
		case <-g.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return g.MemoryMedium.Set(ctx, key, value)
}
