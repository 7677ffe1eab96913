package commands

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rijuma15/cash-faster/internal/config"
	"github.com/rijuma15/cash-faster/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var listenAddr string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the loan processing HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			logger := newLogger(verbose)
			svc := newLoanService(cfg, logger)
			srv := server.New(svc, cfg.AdminBaseURL, logger)

			logger.Info().Str("addr", cfg.ListenAddr).Msg("listening")
			httpServer := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return httpServer.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "cashfaster.yaml", "config file path")
	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}
