// cmd/cities.go
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aceteam-ai/bikeshare-cli/internal/catalog"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	badColor    = color.New(color.FgRed)
)

var citiesCmd = &cobra.Command{
	Use:     "cities",
	Aliases: []string{"ls"},
	Short:   "List the cities in the catalog and whether their files exist",
	Example: `  bikeshare cities
  bikeshare cities --data-dir ~/data/bikeshare --no-color`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		printCities(cmd.OutOrStdout(), cat)
		return nil
	},
}

func printCities(out io.Writer, cat *catalog.Catalog) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	headerColor.Fprintf(w, "CITY\tFILE\tDEMOGRAPHICS\tSTATUS\n")
	for _, city := range cat.Cities {
		path := cat.Path(city)
		demo := "no"
		if city.Demographics {
			demo = "yes"
		}
		status := goodColor.Sprint("found")
		if _, err := os.Stat(path); err != nil {
			status = badColor.Sprint("missing")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", city.Name, path, demo, status)
	}
	fmt.Fprintf(w, "\nmonths: %s\n", strings.Join(cat.Months, ", "))
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
