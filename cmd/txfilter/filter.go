package main

import (
	"fmt"

	"github.com/example/txfilter/internal/logger"
	"github.com/example/txfilter/internal/report"
	"github.com/example/txfilter/pkg/filter"
	"github.com/example/txfilter/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type filterOptions struct {
	issuer string
	typ    string
	min    string
	max    string
}

// predicate combines the set flags with AND. No flags match everything.
func (o filterOptions) predicate() (filter.Predicate, error) {
	var ps []filter.Predicate
	if o.issuer != "" {
		ps = append(ps, filter.ByIssuer(o.issuer))
	}
	if o.typ != "" {
		typ, err := transaction.ParseType(o.typ)
		if err != nil {
			return nil, err
		}
		ps = append(ps, filter.ByType(typ))
	}
	if o.min != "" {
		lower, err := decimal.NewFromString(o.min)
		if err != nil {
			return nil, fmt.Errorf("invalid --min: %w", err)
		}
		ps = append(ps, filter.AmountAbove(lower))
	}
	if o.max != "" {
		upper, err := decimal.NewFromString(o.max)
		if err != nil {
			return nil, fmt.Errorf("invalid --max: %w", err)
		}
		ps = append(ps, filter.AmountBelow(upper))
	}
	return filter.All(ps...), nil
}

func newFilterCmd() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the transactions matching all given conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())
			log := logger.FromContext(cmd.Context())

			p, err := opts.predicate()
			if err != nil {
				return err
			}

			matched, err := filter.NewBuilder(a.transactions).WithPredicate(p).Collect()
			if err != nil {
				return err
			}
			log.Info().Int("input", len(a.transactions)).Int("matched", len(matched)).Msg("filtered transactions")

			report.RenderTransactions(cmd.OutOrStdout(), matched)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.issuer, "issuer", "", "keep transactions from this issuer")
	cmd.Flags().StringVar(&opts.typ, "type", "", "keep transactions of this type (cost or income)")
	cmd.Flags().StringVar(&opts.min, "min", "", "keep totals strictly greater than this amount")
	cmd.Flags().StringVar(&opts.max, "max", "", "keep totals strictly less than this amount")
	return cmd
}
