package filter

import (
	"github.com/example/txfilter/pkg/transaction"
	"github.com/shopspring/decimal"
)

// Predicate reports whether a transaction should be kept.
type Predicate func(transaction.Transaction) bool

// FalliblePredicate is a predicate whose evaluation can fail.
type FalliblePredicate func(transaction.Transaction) (bool, error)

// Check calls p.
func (p Predicate) Check(t transaction.Transaction) bool {
	return p(t)
}

// And matches when both p and other match. other is not evaluated if p fails.
func (p Predicate) And(other Predicate) Predicate {
	return func(t transaction.Transaction) bool {
		return p(t) && other(t)
	}
}

// Or matches when either p or other matches.
func (p Predicate) Or(other Predicate) Predicate {
	return func(t transaction.Transaction) bool {
		return p(t) || other(t)
	}
}

// Not inverts p.
func (p Predicate) Not() Predicate {
	return func(t transaction.Transaction) bool {
		return !p(t)
	}
}

// All matches when every predicate matches. With no predicates it matches everything.
func All(ps ...Predicate) Predicate {
	return func(t transaction.Transaction) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// IsBuy matches cost transactions.
func IsBuy(t transaction.Transaction) bool {
	return t.IsBuy()
}

// ByIssuer matches transactions issued by issuer.
func ByIssuer(issuer string) Predicate {
	return func(t transaction.Transaction) bool {
		return t.Issuer() == issuer
	}
}

// ByType matches transactions of type typ.
func ByType(typ transaction.Type) Predicate {
	return func(t transaction.Transaction) bool {
		return t.Type() == typ
	}
}

// AmountAbove matches totals strictly greater than lower.
func AmountAbove(lower decimal.Decimal) Predicate {
	return func(t transaction.Transaction) bool {
		return t.TotalAmount().GreaterThan(lower)
	}
}

// AmountBelow matches totals strictly less than upper.
func AmountBelow(upper decimal.Decimal) Predicate {
	return func(t transaction.Transaction) bool {
		return t.TotalAmount().LessThan(upper)
	}
}

// AmountBetween matches totals strictly between lower and upper.
func AmountBetween(lower, upper decimal.Decimal) Predicate {
	return AmountAbove(lower).And(AmountBelow(upper))
}
