package serve

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"meeting-insights/cmd/insights/cmd/common"
	"meeting-insights/internal/app"
)

var (
	port            int
	shutdownTimeout time.Duration
)

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "grace period for in-flight requests")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API

- POST /api/v1/insights accepts a transcript or an audio upload
- POST /api/v1/insights/export returns a JSON, CSV or XLSX attachment
- POST /api/v1/insights/email sends the results to the configured recipient`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if port != 0 {
			cfg.Server.Port = port
		}
		if !cfg.Mail.Notify().Configured() {
			logger.Warn("mail credentials not set, email delivery is disabled")
		}

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutdown signal received", zap.Duration("grace", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
