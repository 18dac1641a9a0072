// Package report summarises a set of transactions for the CLI.
package report

import (
	"context"
	"errors"
	"maps"
	"runtime"
	"slices"

	"github.com/example/txfilter/pkg/stream"
	"github.com/example/txfilter/pkg/transaction"
	"github.com/shopspring/decimal"
)

// IssuerSummary holds per issuer figures.
type IssuerSummary struct {
	Issuer  string
	Count   int
	Largest decimal.Decimal
}

// Report is the aggregate view printed by the report command
type Report struct {
	Count      int
	Total      decimal.Decimal
	Buys       int
	Others     int
	Issuers    []IssuerSummary // sorted by issuer
	Threshold  decimal.Decimal
	BySize     map[transaction.Size][]string
	AverageTax int
	HasTax     bool
}

// Build computes the report for txs. Transactions with a total below
// threshold are small.
func Build(ctx context.Context, txs []transaction.Transaction, threshold decimal.Decimal) (Report, error) {
	parts := stream.Partition(txs, transaction.Transaction.IsBuy)
	r := Report{
		Count:     len(txs),
		Total:     transaction.Total(txs),
		Buys:      len(parts[true]),
		Others:    len(parts[false]),
		Threshold: threshold,
		BySize:    make(map[transaction.Size][]string),
	}

	issuer := transaction.Transaction.Issuer
	counts := stream.CountBy(txs, issuer)
	largest := stream.MaxByGroup(txs, issuer, func(a, b transaction.Transaction) int {
		return a.TotalAmount().Cmp(b.TotalAmount())
	})
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		r.Issuers = append(r.Issuers, IssuerSummary{
			Issuer:  name,
			Count:   counts[name],
			Largest: largest[name].TotalAmount(),
		})
	}

	bySize := stream.GroupMapSet(txs, func(t transaction.Transaction) transaction.Size {
		return t.Size(threshold)
	}, issuer)
	for size, names := range bySize {
		r.BySize[size] = slices.Sorted(maps.Keys(names))
	}

	lines := stream.FlatMap(txs, transaction.Transaction.Chargelines)
	avg, err := transaction.ParallelAverageTax(ctx, lines, runtime.GOMAXPROCS(0))
	switch {
	case errors.Is(err, transaction.ErrNoChargelines):
	case err != nil:
		return Report{}, err
	default:
		r.AverageTax, r.HasTax = avg, true
	}

	return r, nil
}
