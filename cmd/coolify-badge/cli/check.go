package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/davarch/coolify-badge/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkWait time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that Coolify is reachable and accepts the token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := mustLoad()
		defer func() { _ = d.log.Sync() }()

		v, err := d.client.Check(cmd.Context(), checkWait)
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return fmt.Errorf("coolify at %s rejected API_TOKEN", d.cfg.Coolify.URL)
		case err != nil:
			return fmt.Errorf("coolify at %s: %w", d.cfg.Coolify.URL, err)
		}

		d.log.Info("coolify ok", zap.String("url", d.cfg.Coolify.URL), zap.String("version", v))
		fmt.Println(v)
		return nil
	},
}

func init() {
	checkCmd.Flags().DurationVar(&checkWait, "wait", 5*time.Second, "give up retrying after this long")

	rootCmd.AddCommand(checkCmd)
}
