package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidArgument is matched by every ValidationError
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorage is matched by every StorageError
	ErrStorage = errors.New("storage failure")

	// ErrQuotaExceeded indicates the backing store refused a write for size
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrItemNotFound indicates the requested list item does not exist
	ErrItemNotFound = errors.New("list item not found")

	// ErrCollectionNotFound indicates the requested collection does not exist
	ErrCollectionNotFound = errors.New("collection not found")
)

// ValidationError reports a malformed caller argument. It is always
// returned before any mutation takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// Invalid builds a ValidationError
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError reports a failed write. The caller's in-memory view may
// already reflect the change, so durability is uncertain.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }
