package main

import (
	"fmt"

	"github.com/example/txfilter/internal/logger"
	"github.com/example/txfilter/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var threshold string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print totals, partitions and per issuer groupings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())
			log := logger.FromContext(cmd.Context())

			if threshold != "" {
				a.cfg.SizeThreshold = threshold
			}
			limit, err := a.cfg.Threshold()
			if err != nil {
				return err
			}

			r, err := report.Build(cmd.Context(), a.transactions, limit)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}
			log.Debug().Stringer("threshold", limit).Int("issuers", len(r.Issuers)).Msg("report built")

			report.Render(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVar(&threshold, "threshold", "", "amount separating small and big transactions (default from config)")
	return cmd
}
