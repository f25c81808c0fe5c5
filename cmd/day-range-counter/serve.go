package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/day-range-counter/internal/server"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counting form endpoint over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *appConfig
			if listenAddr != "" {
				cfg.Server.ListenAddr = listenAddr
			}

			// Setup signal handling
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting day range counter server",
				zap.String("listen_addr", cfg.Server.ListenAddr),
				zap.Int("rate_per_minute", cfg.Server.RatePerMinute),
				zap.Bool("include_all_days", cfg.Counter.IncludeAllDays),
				zap.Strings("weekdays", cfg.Counter.Weekdays))

			return server.New(&cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address, overrides server.listen_addr")

	return cmd
}
