package filter

import (
	"github.com/example/txfilter/pkg/transaction"
)

// Builder holds a collection whose predicate is supplied later.
// Builders are values: WithPredicate returns a new Builder and leaves the
// receiver untouched, so a Builder can be shared between goroutines.
type Builder struct {
	transactions []transaction.Transaction
	predicate    Predicate
}

// NewBuilder binds a copy of txs.
func NewBuilder(txs []transaction.Transaction) Builder {
	bound := make([]transaction.Transaction, len(txs))
	copy(bound, txs)
	return Builder{transactions: bound}
}

// WithPredicate returns a builder that will filter with p.
func (b Builder) WithPredicate(p Predicate) Builder {
	b.predicate = p
	return b
}

// Configured reports whether a predicate has been set.
func (b Builder) Configured() bool {
	return b.predicate != nil
}

// Collect applies the predicate to the bound collection.
func (b Builder) Collect() ([]transaction.Transaction, error) {
	if b.predicate == nil {
		return nil, ErrNotConfigured
	}
	return Filter(b.transactions, b.predicate)
}
