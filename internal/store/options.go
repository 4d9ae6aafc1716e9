package store

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// CorruptPolicy decides what List does with a blob that cannot be decoded.
type CorruptPolicy int

const (
	// CorruptFail surfaces ErrCorruptData so callers can tell lost data from no data.
	CorruptFail CorruptPolicy = iota
	// CorruptAsEmpty logs the failure and reads the table as empty.
	CorruptAsEmpty
)

// String implements fmt.Stringer.
func (p CorruptPolicy) String() string {
	switch p {
	case CorruptAsEmpty:
		return "empty"
	default:
		return "fail"
	}
}

// ParseCorruptPolicy accepts "fail" or "empty".
func ParseCorruptPolicy(value string) (CorruptPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "fail":
		return CorruptFail, nil
	case "empty":
		return CorruptAsEmpty, nil
	default:
		return CorruptFail, fmt.Errorf("unknown corrupt policy %q", value)
	}
}

type options struct {
	logger    zerolog.Logger
	corrupt   CorruptPolicy
	strictIDs bool
}

func defaultOptions() options {
	return options{logger: zerolog.Nop(), corrupt: CorruptFail}
}

// Option configures optional behaviour for tables.
type Option func(*options)

// WithLogger overrides the logger used to report recovered failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCorruptPolicy selects how List treats undecodable data. Mutations always
// refuse to overwrite a corrupt blob.
func WithCorruptPolicy(policy CorruptPolicy) Option {
	return func(o *options) {
		o.corrupt = policy
	}
}

// WithStrictIDs makes Update and Delete return ErrRecordNotFound for unknown ids
// instead of silently doing nothing.
func WithStrictIDs() Option {
	return func(o *options) {
		o.strictIDs = true
	}
}
