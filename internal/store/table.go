// Package store implements record tables persisted as whole JSON arrays on a kv.Medium.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"example.com/fittrack/internal/kv"
	"example.com/fittrack/internal/observability"
)

// Record is a table row that carries a positive integer id.
type Record[R any] interface {
	RecordID() int
	WithID(id int) R
}

// Table is an ordered sequence of records persisted as one blob under key.
// Every call reloads the blob, so sequential callers always read their own writes.
// Mutations on one Table are serialised; tables never contend with each other.
type Table[R Record[R]] struct {
	medium kv.Medium
	name   string
	key    string
	opts   options
	logger zerolog.Logger
	sem    chan struct{}
	now    func() time.Time
}

// NewTable constructs a Table. name labels logs and metrics, key is the medium key.
func NewTable[R Record[R]](medium kv.Medium, name, key string, opts ...Option) *Table[R] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[R]{
		medium: medium,
		name:   name,
		key:    key,
		opts:   o,
		logger: o.logger.With().Str("component", "store").Str("table", name).Logger(),
		sem:    make(chan struct{}, 1),
		now:    time.Now,
	}
}

// Name returns the table label.
func (t *Table[R]) Name() string { return t.name }

// Key returns the medium key the table is stored under.
func (t *Table[R]) Key() string { return t.key }

// List returns every record in stored order. An absent table is empty.
// Medium failures are logged and read as an empty table; corrupt data follows
// the configured CorruptPolicy. List never writes.
func (t *Table[R]) List(ctx context.Context) (rows []R, err error) {
	started := time.Now()
	defer func() { observability.RecordOperation(t.name, "list", started, err) }()

	rows, err = t.load(ctx)
	switch {
	case err == nil:
		observability.RecordTableSize(t.name, len(rows))
		return rows, nil
	case errors.Is(err, ErrCorruptData) && t.opts.corrupt == CorruptAsEmpty:
		t.logger.Warn().Err(err).Msg("corrupt table read as empty")
		observability.RecordRecoveredList(t.name, "corrupt")
		return []R{}, nil
	case errors.Is(err, ErrMediumUnavailable) && ctx.Err() == nil:
		t.logger.Warn().Err(err).Msg("medium unavailable, table read as empty")
		observability.RecordRecoveredList(t.name, "medium")
		return []R{}, nil
	}
	return nil, err
}

// Add assigns the smallest unused positive id to partial, appends it and
// returns the stored record. Any id already set on partial is replaced.
func (t *Table[R]) Add(ctx context.Context, partial R) (R, error) {
	var created R
	err := t.mutate(ctx, "add", func(rows []R) ([]R, bool, error) {
		used := make(map[int]struct{}, len(rows))
		for _, r := range rows {
			used[r.RecordID()] = struct{}{}
		}
		created = partial.WithID(NextID(used))
		return append(rows, created), true, nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	t.logger.Debug().Int("id", created.RecordID()).Msg("record added")
	return created, nil
}

// Update replaces the record with the same id, all fields included.
func (t *Table[R]) Update(ctx context.Context, record R) error {
	id := record.RecordID()
	if id <= 0 {
		return fmt.Errorf("update %s: %w: %d", t.name, ErrInvalidID, id)
	}
	return t.mutate(ctx, "update", func(rows []R) ([]R, bool, error) {
		for i, r := range rows {
			if r.RecordID() == id {
				rows[i] = record
				return rows, true, nil
			}
		}
		return t.missing("update", id)
	})
}

// Delete removes the record with id.
func (t *Table[R]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("delete %s: %w: %d", t.name, ErrInvalidID, id)
	}
	return t.mutate(ctx, "delete", func(rows []R) ([]R, bool, error) {
		kept := rows[:0]
		found := false
		for _, r := range rows {
			if r.RecordID() == id {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		if !found {
			return t.missing("delete", id)
		}
		return kept, true, nil
	})
}

// Clear removes the table blob; the key becomes absent.
func (t *Table[R]) Clear(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { observability.RecordOperation(t.name, "clear", started, err) }()

	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.unlock()

	if err := t.medium.Remove(ctx, t.key); err != nil {
		return fmt.Errorf("remove %s: %w: %w", t.key, ErrMediumUnavailable, err)
	}
	observability.RecordTableSize(t.name, 0)
	observability.RecordTableMutated(t.name, t.now())
	t.logger.Debug().Msg("table cleared")
	return nil
}

// mutate runs one load-transform-store cycle while holding the table slot.
// fn reports whether anything changed; unchanged tables are not rewritten.
func (t *Table[R]) mutate(ctx context.Context, op string, fn func([]R) ([]R, bool, error)) (err error) {
	started := time.Now()
	defer func() { observability.RecordOperation(t.name, op, started, err) }()

	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.unlock()

	rows, err := t.load(ctx)
	if err != nil {
		return err
	}
	next, changed, err := fn(rows)
	if err != nil || !changed {
		return err
	}
	return t.save(ctx, next)
}

func (t *Table[R]) missing(op string, id int) ([]R, bool, error) {
	if t.opts.strictIDs {
		return nil, false, fmt.Errorf("%s %s id %d: %w", op, t.name, id, ErrRecordNotFound)
	}
	t.logger.Debug().Str("op", op).Int("id", id).Msg("no record with id, nothing to do")
	return nil, false, nil
}

func (t *Table[R]) load(ctx context.Context) ([]R, error) {
	raw, ok, err := t.medium.Get(ctx, t.key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", t.key, ErrMediumUnavailable, err)
	}
	if !ok || raw == "" {
		return []R{}, nil
	}

	var rows []R
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		observability.RecordCorruptRead(t.name)
		return nil, fmt.Errorf("decode %s: %w: %w", t.key, ErrCorruptData, err)
	}
	if rows == nil {
		rows = []R{}
	}
	return rows, nil
}

func (t *Table[R]) save(ctx context.Context, rows []R) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.key, err)
	}
	if err := t.medium.Set(ctx, t.key, string(body)); err != nil {
		return fmt.Errorf("set %s: %w: %w", t.key, ErrMediumUnavailable, err)
	}
	observability.RecordTableSize(t.name, len(rows))
	observability.RecordTableMutated(t.name, t.now())
	return nil
}

func (t *Table[R]) lock(ctx context.Context) error {
	select {
	case t.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Table[R]) unlock() {
	<-t.sem
}
