// Package filter selects transactions with caller supplied predicates.
//
// Filter and TryFilter never modify their input and always return a new
// slice in input order. Builder binds the collection first and takes the
// predicate later.
package filter

import (
	"github.com/example/txfilter/pkg/transaction"
)

// Filter returns the transactions matching p, in input order.
func Filter(txs []transaction.Transaction, p Predicate) ([]transaction.Transaction, error) {
	if p == nil {
		return nil, ErrNilPredicate
	}
	result := make([]transaction.Transaction, 0, len(txs))
	for _, t := range txs {
		if p(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// MustFilter is like Filter but panics on error.
func MustFilter(txs []transaction.Transaction, p Predicate) []transaction.Transaction {
	result, err := Filter(txs, p)
	if err != nil {
		panic(err)
	}
	return result
}

// TryFilter is Filter for predicates that can fail. The first failure stops
// the pass and is returned as a *PredicateError; no partial result is returned.
func TryFilter(txs []transaction.Transaction, p FalliblePredicate) ([]transaction.Transaction, error) {
	if p == nil {
		return nil, ErrNilPredicate
	}
	result := make([]transaction.Transaction, 0, len(txs))
	for i, t := range txs {
		ok, err := p(t)
		if err != nil {
			return nil, &PredicateError{Index: i, Err: err}
		}
		if ok {
			result = append(result, t)
		}
	}
	return result, nil
}
