package domain

import (
	"errors"
	"fmt"
)

// Initialization failure reasons
var (
	ErrAlreadyInitialized = errors.New("slider already initialized")
	ErrNotInitialized     = errors.New("slider not initialized")
	ErrDisposed           = errors.New("slider disposed")
	ErrMissingContainer   = errors.New("container is nil")
	ErrMissingBoard       = errors.New("no slide board found in container")
)

// InitializationError is returned when the slider cannot be set up, or when
// an operation is attempted on a slider that is not in a usable lifecycle state.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization error: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// ConfigurationError is returned for an option value that cannot be used
type ConfigurationError struct {
	Option string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s=%v: %s", e.Option, e.Value, e.Reason)
}

// InvalidIndexError is returned when a navigation target is outside [0, ItemCount)
type InvalidIndexError struct {
	Index     int
	ItemCount int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid slide index %d (item count %d)", e.Index, e.ItemCount)
}
