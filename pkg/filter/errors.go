package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPredicate is returned when a filter is asked to run without a predicate.
	ErrNilPredicate = errors.New("predicate is nil")
	// ErrNotConfigured is returned by Builder.Collect before WithPredicate was called.
	ErrNotConfigured = errors.New("filter not configured: no predicate set")
)

// PredicateError reports a predicate failure on the element at Index.
type PredicateError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *PredicateError) Error() string {
	return fmt.Sprintf("predicate failed on transaction %d: %v", e.Index, e.Err)
}

// Unwrap returns the predicate's own error.
func (e *PredicateError) Unwrap() error {
	return e.Err
}
