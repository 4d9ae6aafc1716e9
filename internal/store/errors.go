package store

import "errors"

var (
	// ErrCorruptData is returned when a stored table blob cannot be decoded.
	ErrCorruptData = errors.New("stored table data is corrupt")
	// ErrMediumUnavailable wraps failures of the underlying key-value medium.
	ErrMediumUnavailable = errors.New("storage medium unavailable")
	// ErrRecordNotFound is returned by Update and Delete in strict-id mode.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an update or delete carries a non-positive id.
	ErrInvalidID = errors.New("record id must be a positive integer")
)
