package transaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidType is returned when a transaction is built with an unknown type.
var ErrInvalidType = errors.New("invalid transaction type")

// Type classifies a transaction as a cost or an income
type Type int

// Transaction types.
const (
	Cost Type = iota + 1
	Income
)

// String returns "COST" or "INCOME".
func (t Type) String() string {
	switch t {
	case Cost:
		return "COST"
	case Income:
		return "INCOME"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t == Cost || t == Income
}

// ParseType parses "cost" or "income", ignoring case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cost":
		return Cost, nil
	case "income":
		return Income, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Size buckets transactions by total amount
type Size int

// Size buckets.
const (
	Small Size = iota + 1
	Big
)

// String returns "SMALL" or "BIG".
func (s Size) String() string {
	if s == Small {
		return "SMALL"
	}
	return "BIG"
}

// Chargeline is a single line item of a transaction
type Chargeline struct {
	amount      decimal.Decimal
	description string
	taxPercent  int
}

// NewChargeline builds a line item. The tax percent is expected to be in 0..100
// but is not checked.
func NewChargeline(amount decimal.Decimal, description string, taxPercent int) Chargeline {
	return Chargeline{amount: amount, description: description, taxPercent: taxPercent}
}

// Amount returns the line amount.
func (c Chargeline) Amount() decimal.Decimal { return c.amount }

// Description returns the line description.
func (c Chargeline) Description() string { return c.description }

// TaxPercent returns the line tax rate in percent.
func (c Chargeline) TaxPercent() int { return c.taxPercent }

// Transaction is an immutable group of chargelines issued by one party.
// The total amount is fixed when the transaction is created.
type Transaction struct {
	id          string
	issuer      string
	typ         Type
	chargelines []Chargeline
	total       decimal.Decimal
}

// New creates a transaction from a copy of chargelines. A nil or empty slice
// gives a transaction with a zero total.
func New(issuer string, typ Type, chargelines []Chargeline) (Transaction, error) {
	if !typ.Valid() {
		return Transaction{}, fmt.Errorf("%w: %v", ErrInvalidType, typ)
	}

	lines := make([]Chargeline, len(chargelines))
	copy(lines, chargelines)

	total := decimal.Zero
	for _, c := range lines {
		total = total.Add(c.amount)
	}

	return Transaction{
		id:          uuid.NewString(),
		issuer:      issuer,
		typ:         typ,
		chargelines: lines,
		total:       total,
	}, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(issuer string, typ Type, chargelines ...Chargeline) Transaction {
	t, err := New(issuer, typ, chargelines)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the identifier assigned at construction.
func (t Transaction) ID() string { return t.id }

// Issuer returns who issued the transaction.
func (t Transaction) Issuer() string { return t.issuer }

// Type returns whether the transaction is a cost or an income.
func (t Transaction) Type() Type { return t.typ }

// TotalAmount returns the sum of the chargeline amounts.
func (t Transaction) TotalAmount() decimal.Decimal { return t.total }

// IsBuy reports whether the transaction is a cost.
func (t Transaction) IsBuy() bool {
	return t.typ == Cost
}

// Chargelines returns a copy of the transaction's line items.
func (t Transaction) Chargelines() []Chargeline {
	lines := make([]Chargeline, len(t.chargelines))
	copy(lines, t.chargelines)
	return lines
}

// Size is Small when the total is below threshold, Big otherwise.
func (t Transaction) Size(threshold decimal.Decimal) Size {
	if t.total.LessThan(threshold) {
		return Small
	}
	return Big
}
