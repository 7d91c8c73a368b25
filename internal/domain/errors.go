package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleResult signals that a fetch resolved after its query key was
	// superseded. Internal control flow only, never surfaced to callers.
	ErrStaleResult = errors.New("stale result discarded")

	// ErrShuttingDown is returned when work is submitted to a stopped session
	ErrShuttingDown = errors.New("session shutting down")
)

// RepositoryError wraps any failed repository fetch (network failure,
// store-side rejection, shape mismatch). Empty result sets are not errors.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError wraps err with the failing repository operation name
func NewRepositoryError(op string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Err: err}
}

// IsRepositoryError reports whether err is (or wraps) a RepositoryError
func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
