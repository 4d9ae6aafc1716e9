// Package bolt persists record tables in a single-file bbolt database on the device.
package bolt

import (
	"context"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"
)

// DefaultBucket holds every table blob.
const DefaultBucket = "tables"

// Medium stores blobs as values of one bbolt bucket.
type Medium struct {
	db     *bbolt.DB
	bucket []byte
}

// Open opens or creates the database file at path and ensures the bucket exists.
func Open(path string) (*Medium, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	m := &Medium{db: db, bucket: []byte(DefaultBucket)}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(m.bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", DefaultBucket, err)
	}
	return m, nil
}

// Close releases the database file lock.
func (m *Medium) Close() error {
	return m.db.Close()
}

// Get implements kv.Medium.
func (m *Medium) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		value string
		ok    bool
	)
	err := m.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if b == nil {
			return fmt.Errorf("bucket not found: %s", m.bucket)
		}
		// bbolt slices are only valid inside the transaction.
		if data := b.Get([]byte(key)); data != nil {
			value, ok = string(data), true
		}
		return nil
	})
	return value, ok, err
}

// Set implements kv.Medium.
func (m *Medium) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if b == nil {
			return fmt.Errorf("bucket not found: %s", m.bucket)
		}
		return b.Put([]byte(key), []byte(value))
	})
}

// Remove implements kv.Medium.
func (m *Medium) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if b == nil {
			return fmt.Errorf("bucket not found: %s", m.bucket)
		}
		return b.Delete([]byte(key))
	})
}
