// cmd/stats.go
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aceteam-ai/bikeshare-cli/internal/stats"
	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
)

var (
	statsFlags  selectFlags
	statsAsJSON bool
)

// statsOutput is the --json document.
type statsOutput struct {
	City   string       `json:"city"`
	Month  string       `json:"month"`
	Day    string       `json:"day"`
	Report stats.Report `json:"report"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the statistics of one city without prompting",
	Example: `  # All of June in Chicago
  bikeshare stats --city chicago --month june

  # Machine-readable report
  bikeshare stats --city washington --day monday --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		sel, err := statsFlags.resolve(cat)
		if err != nil {
			return err
		}

		// Progress goes to stderr so stdout holds only the report.
		view, err := loadSelection(cmd.ErrOrStderr(), tui.IsTTY() && !statsAsJSON, cat, sel)
		if err != nil {
			return err
		}
		report, err := stats.Compute(cmd.Context(), view)
		if err != nil {
			return fmt.Errorf("could not compute statistics: %w", err)
		}

		if statsAsJSON {
			return writeJSON(cmd.OutOrStdout(), statsOutput{
				City:   sel.city.Name,
				Month:  sel.month.String(),
				Day:    sel.day.String(),
				Report: report,
			})
		}
		writeReport(cmd.OutOrStdout(), sel, report)
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(w io.Writer, sel selection, r stats.Report) {
	fmt.Fprintln(w, tui.TitleStyle.Render(fmt.Sprintf("%s (%d trips)", sel, r.Trips)))
	for _, s := range tui.ReportSections(r) {
		fmt.Fprintln(w, s.Render())
	}
}

func init() {
	addSelectFlags(statsCmd, &statsFlags)
	statsCmd.Flags().BoolVar(&statsAsJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(statsCmd)
}
