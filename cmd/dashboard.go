// cmd/dashboard.go
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aceteam-ai/bikeshare-cli/internal/stats"
	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
	"github.com/aceteam-ai/bikeshare-cli/internal/tui/dashboard"
)

var dashboardFlags selectFlags

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show the statistics of one city as a full-screen dashboard",
	Long: `Loads one city, applies the month and day filter and shows the four
statistic groups side by side. Press q or Esc to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsTTY() {
			return errors.New("dashboard needs a terminal; use 'bikeshare stats' instead")
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		sel, err := dashboardFlags.resolve(cat)
		if err != nil {
			return err
		}
		view, err := loadSelection(cmd.ErrOrStderr(), true, cat, sel)
		if err != nil {
			return err
		}
		report, err := stats.Compute(cmd.Context(), view)
		if err != nil {
			return fmt.Errorf("could not compute statistics: %w", err)
		}

		title := fmt.Sprintf("Bikeshare: %s (%d trips)", sel, report.Trips)
		return dashboard.New(title, tui.ReportSections(report)).Run()
	},
}

func init() {
	addSelectFlags(dashboardCmd, &dashboardFlags)
	rootCmd.AddCommand(dashboardCmd)
}
