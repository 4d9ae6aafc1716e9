// Package redis persists record tables as plain string keys in Redis, Valkey or DragonflyDB.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Medium maps table keys to Redis string keys, optionally under a prefix.
type Medium struct {
	client *redis.Client
	prefix string
}

// Option configures a Medium.
type Option func(*Medium)

// WithKeyPrefix namespaces every key, e.g. "fittrack:" yields "fittrack:runs_table".
func WithKeyPrefix(prefix string) Option {
	return func(m *Medium) {
		m.prefix = prefix
	}
}

// Open parses url, connects and verifies the connection with PING.
func Open(ctx context.Context, url string, opts ...Option) (*Medium, error) {
	parsed, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(parsed)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return New(client, opts...), nil
}

// New wraps an existing client.
func New(client *redis.Client, opts ...Option) *Medium {
	m := &Medium{client: client}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Close closes the underlying client.
func (m *Medium) Close() error {
	return m.client.Close()
}

func (m *Medium) key(key string) string {
	return m.prefix + key
}

// Get implements kv.Medium.
func (m *Medium) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := m.client.Get(ctx, m.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set implements kv.Medium. Table blobs never expire.
func (m *Medium) Set(ctx context.Context, key, value string) error {
	return m.client.Set(ctx, m.key(key), value, 0).Err()
}

// Remove implements kv.Medium.
func (m *Medium) Remove(ctx context.Context, key string) error {
	return m.client.Del(ctx, m.key(key)).Err()
}
