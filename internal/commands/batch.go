package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rijuma15/cash-faster/internal/config"
	"github.com/rijuma15/cash-faster/internal/loan"
	"github.com/rijuma15/cash-faster/internal/report"
)

func newBatchCommand() *cobra.Command {
	var configPath string
	var outputPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "batch [loanID...]",
		Short: "Process a batch of loans and write one combined report",
		Long: `Process each loan id to completion and write all formatted outputs
to a single text artifact. Loan ids come from the arguments, or from
loan_ids in the config file when no arguments are given. A loan that
fails to fetch is logged and skipped; the batch always completes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outputPath != "" {
				cfg.OutputPath = outputPath
			}

			ids, err := loanIDs(args, cfg)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return fmt.Errorf("no loan ids: pass them as arguments or set loan_ids in %s", configPath)
			}

			logger := newLogger(verbose)
			svc := newLoanService(cfg, logger)
			return runBatch(cmd.Context(), svc, cfg, ids, logger)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "cashfaster.yaml", "config file path")
	cmd.Flags().StringVar(&outputPath, "output", "", "write the combined report here instead of the configured path")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

// runBatch processes each loan to completion before starting the next.
func runBatch(ctx context.Context, svc *loan.Service, cfg *config.Config, ids []int, logger zerolog.Logger) error {
	var outputs []string
	for _, id := range ids {
		assessment, err := svc.Process(ctx, id)
		if err != nil {
			logger.Error().Err(err).Int("loan_id", id).Msg("skipping loan")
			continue
		}
		outputs = append(outputs, report.Format(assessment, cfg.AdminBaseURL))
	}

	if err := report.WriteAll(cfg.OutputPath, outputs); err != nil {
		return fmt.Errorf("writing batch output: %w", err)
	}

	logger.Info().
		Int("processed", len(outputs)).
		Int("requested", len(ids)).
		Str("path", cfg.OutputPath).
		Msg("batch complete")
	return nil
}

// loanIDs parses ids from the arguments, falling back to the config.
func loanIDs(args []string, cfg *config.Config) ([]int, error) {
	if len(args) == 0 {
		return cfg.LoanIDs, nil
	}

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid loan id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
