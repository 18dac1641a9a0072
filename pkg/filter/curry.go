package filter

import (
	"github.com/example/txfilter/pkg/transaction"
	"github.com/samber/lo"
)

// Curry turns a two argument function into a chain of one argument functions.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return lo.Partial(f, a)
	}
}

// Uncurry reverses Curry.
func Uncurry[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Result pairs the two return values of Filter so it can be curried.
type Result struct {
	Transactions []transaction.Transaction
	Err          error
}

// Curried is Filter in curried form: Curried(txs)(p).
var Curried = Curry(func(txs []transaction.Transaction, p Predicate) Result {
	res, err := Filter(txs, p)
	return Result{Transactions: res, Err: err}
})
