package cli

import (
	"os/signal"
	"syscall"

	"github.com/davarch/coolify-badge/internal/infrastructure/http_server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve badges over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := mustLoad()
		defer func() { _ = d.log.Sync() }()

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		d.log.Info("start",
			zap.String("version", version),
			zap.String("coolify", d.cfg.Coolify.URL),
			zap.Duration("timeout", d.cfg.Coolify.Timeout),
			zap.Uint16("port", d.cfg.Server.Port),
		)

		srv := http_server.NewServer(d.log, d.cfg.Addr(), http_server.NewHandler(d.log, d.badges))
		if err := srv.Run(ctx); err != nil {
			d.log.Fatal("serve", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
