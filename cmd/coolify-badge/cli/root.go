package cli

import (
	"fmt"
	"os"

	"github.com/davarch/coolify-badge/internal/application"
	"github.com/davarch/coolify-badge/internal/infrastructure/badge_svg"
	"github.com/davarch/coolify-badge/internal/infrastructure/config"
	"github.com/davarch/coolify-badge/internal/infrastructure/coolify_http"
	"github.com/davarch/coolify-badge/internal/infrastructure/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "coolify-badge",
	Short: "SVG deployment status badges for Coolify applications",
	Args:  cobra.NoArgs,
	Run:   serveCmd.Run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deps is what every upstream-facing command needs.
type deps struct {
	cfg    config.Config
	log    *zap.Logger
	client *coolify_http.Client
	badges *application.BadgeUseCase
}

// mustLoad exits the process on configuration errors.
func mustLoad() deps {
	cfg, err := config.Load(cfgPath)
	log := logging.Must(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	client := coolify_http.New(cfg.Coolify.URL, cfg.Coolify.Token, cfg.Coolify.Timeout)
	return deps{
		cfg:    cfg,
		log:    log,
		client: client,
		badges: application.NewBadgeUseCase(log, client, badge_svg.New()),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "badge.yaml", "path to badge.yaml (optional)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version)
		},
	})

	comp := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	rootCmd.AddCommand(comp)
}
