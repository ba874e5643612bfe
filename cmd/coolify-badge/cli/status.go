package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusJSON bool

type statusRow struct {
	App    string `json:"app"`
	Status string `json:"status"`
	Color  string `json:"color"`
}

var statusCmd = &cobra.Command{
	Use:   "status <app_id>...",
	Short: "Print the latest deployment status of applications",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := mustLoad()
		defer func() { _ = d.log.Sync() }()

		rows := make([]statusRow, 0, len(args))
		for _, app := range args {
			s := d.badges.Status(cmd.Context(), app)
			rows = append(rows, statusRow{App: app, Status: s.String(), Color: s.Color()})
		}

		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "APP\tSTATUS\tCOLOR")
		for _, r := range rows {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.App, r.Status, r.Color)
		}
		return w.Flush()
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print JSON")

	rootCmd.AddCommand(statusCmd)
}
