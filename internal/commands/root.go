// Package commands wires the CLI surface: batch processing over many
// loan ids, and the single-lookup HTTP server.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rijuma15/cash-faster/internal/buildinfo"
	"github.com/rijuma15/cash-faster/internal/client"
	"github.com/rijuma15/cash-faster/internal/config"
	"github.com/rijuma15/cash-faster/internal/loan"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cashfaster",
		Short:   "Bank-statement serviceability analysis for loan applications",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// newLogger builds the console logger shared by all commands.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}

// newLoanService wires the HTTP collaborators into a loan Service.
func newLoanService(cfg *config.Config, logger zerolog.Logger) *loan.Service {
	timeout := time.Duration(cfg.HTTPTimeout)
	docs := client.NewDocumentClient(cfg.AdminBaseURL, timeout, logger)
	calc := client.NewCalculatorClient(cfg.AppBaseURL, timeout, logger)
	keywords := client.NewKeywordClient(cfg.AppBaseURL, timeout, time.Duration(cfg.KeywordCacheTTL), logger)
	return loan.NewService(docs, calc, keywords, logger)
}
