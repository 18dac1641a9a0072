package transaction

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ErrNoChargelines is returned by the tax averages for an empty input.
var ErrNoChargelines = errors.New("no chargelines")

// Total sums the total amounts of txs.
func Total(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		sum = sum.Add(t.total)
	}
	return sum
}

// ChargelineTotal sums every chargeline of every transaction, ignoring the
// precomputed totals.
func ChargelineTotal(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		for _, c := range t.chargelines {
			sum = sum.Add(c.amount)
		}
	}
	return sum
}

// AverageTax returns the integer mean of the lines' tax percents.
func AverageTax(lines []Chargeline) (int, error) {
	if len(lines) == 0 {
		return 0, ErrNoChargelines
	}
	sum := 0
	for _, c := range lines {
		sum += c.taxPercent
	}
	return sum / len(lines), nil
}

// ParallelAverageTax computes the same value as AverageTax by summing
// contiguous chunks of lines on up to workers goroutines.
func ParallelAverageTax(ctx context.Context, lines []Chargeline, workers int) (int, error) {
	if len(lines) == 0 {
		return 0, ErrNoChargelines
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	chunk := (len(lines) + workers - 1) / workers
	sums := make([]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(lines))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := 0
			for _, c := range lines[lo:hi] {
				s += c.taxPercent
			}
			sums[w] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, s := range sums {
		total += s
	}
	return total / len(lines), nil
}
