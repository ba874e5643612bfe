package cli

import (
	"os"

	"github.com/davarch/coolify-badge/internal/domain"
	"github.com/davarch/coolify-badge/internal/infrastructure/badge_svg"
	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <status>",
	Short: "Write the badge for a status without asking Coolify",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := os.Stdout
		if renderOut != "" && renderOut != "-" {
			f, err := os.Create(renderOut)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		return badge_svg.New().Render(out, domain.DeploymentStatus(args[0]))
	},
}

func init() {
	renderCmd.ValidArgs = []string{
		string(domain.StatusFinished),
		string(domain.StatusFailed),
		string(domain.StatusInProgress),
		string(domain.StatusQueued),
		string(domain.StatusNoHistory),
		string(domain.StatusUnauthorized),
		string(domain.StatusOffline),
		string(domain.StatusParseError),
	}
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "-", "output file, - for stdout")

	rootCmd.AddCommand(renderCmd)
}
