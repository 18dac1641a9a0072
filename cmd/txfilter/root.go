package main

import (
	"context"
	"fmt"

	"github.com/example/txfilter/internal/config"
	"github.com/example/txfilter/internal/logger"
	"github.com/example/txfilter/internal/sample"
	"github.com/example/txfilter/pkg/transaction"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

type appKey struct{}

// app is what every subcommand needs after the root has loaded its inputs.
type app struct {
	cfg          *config.Config
	transactions []transaction.Transaction
}

func appFrom(ctx context.Context) *app {
	a, _ := ctx.Value(appKey{}).(*app)
	return a
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "txfilter",
		Short: "Filter and summarise financial transactions",
		Long: `Txfilter is a tool for selecting transactions with predicates
(issuer, type, amount range) and reporting totals, partitions and groupings.
Transactions come from a TOML file or, without one, from a built-in sample set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			txs := sample.Shop()
			if configPath != "" {
				if txs, err = cfg.BuildTransactions(); err != nil {
					return err
				}
			}
			log.Debug().Str("config", configPath).Int("transactions", len(txs)).Msg("loaded transactions")

			ctx := logger.WithContext(cmd.Context(), log)
			cmd.SetContext(context.WithValue(ctx, appKey{}, &app{cfg: cfg, transactions: txs}))
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Txfilter v%s\n", version)
			fmt.Fprintln(cmd.OutOrStdout(), "Use --help for available commands")
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML file with transactions (default: built-in sample)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newFilterCmd(), newReportCmd())
	return cmd
}
