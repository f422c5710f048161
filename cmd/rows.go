// cmd/rows.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
)

var (
	rowsFlags  selectFlags
	rowsOffset int
	rowsSize   int
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print a page of raw trips",
	Example: `  # First five trips of March in New York City
  bikeshare rows --city "new york city" --month march

  # The page after that
  bikeshare rows --city "new york city" --month march --offset 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rowsOffset < 0 {
			return fmt.Errorf("--offset must not be negative, got %d", rowsOffset)
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		sel, err := rowsFlags.resolve(cat)
		if err != nil {
			return err
		}
		view, err := loadSelection(cmd.ErrOrStderr(), tui.IsTTY(), cat, sel)
		if err != nil {
			return err
		}

		c := dataset.NewCursor(rowsSize)
		c.Offset = rowsOffset
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tui.RenderPage(view, c))
		if !c.Done(view) {
			last := min(c.Offset+c.Size, view.Len())
			fmt.Fprintln(out, tui.MutedStyle.Render(fmt.Sprintf("rows %d-%d of %d", c.Offset, last-1, view.Len())))
		}
		return nil
	},
}

func init() {
	addSelectFlags(rowsCmd, &rowsFlags)
	rowsCmd.Flags().IntVar(&rowsOffset, "offset", 0, "index of the first row to print")
	rowsCmd.Flags().IntVarP(&rowsSize, "size", "n", dataset.DefaultPageSize, "number of rows to print")
	rootCmd.AddCommand(rowsCmd)
}
