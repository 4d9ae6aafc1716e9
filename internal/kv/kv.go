// Package kv defines the string-keyed blob medium that record tables are persisted on.
package kv

import "context"

// Medium is a persistent string-keyed blob store. Single-key operations are
// expected to be linearizable; nothing else is assumed.
type Medium interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
