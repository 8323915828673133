package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable is returned by every operation of a store that has no
	// database configured.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrNotFound is reserved for single-document lookups.
	ErrNotFound = errors.New("document not found")
)

// WriteError wraps a failed insert on a live connection.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps a failed query on a live connection.
type ReadError struct {
	Collection string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Collection, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
