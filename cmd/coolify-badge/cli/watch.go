package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/davarch/coolify-badge/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchEvery time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <app_id>...",
	Short: "Poll applications and report status changes",
	Args:  cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if watchEvery <= 0 {
			return fmt.Errorf("--every must be positive")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		d := mustLoad()
		defer func() { _ = d.log.Sync() }()

		sched := application.NewScheduler(d.log, d.badges, args, watchEvery, func(tr application.Transition) {
			d.log.Info("status changed",
				zap.String("app", tr.AppID),
				zap.String("from", tr.From),
				zap.String("to", tr.To),
			)
		})

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		d.log.Info("watch",
			zap.Strings("apps", args),
			zap.Duration("every", watchEvery),
		)
		sched.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchEvery, "every", 30*time.Second, "poll interval")

	rootCmd.AddCommand(watchCmd)
}
