// cmd/selection.go
package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aceteam-ai/bikeshare-cli/internal/catalog"
	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
	"github.com/aceteam-ai/bikeshare-cli/internal/filter"
	"github.com/aceteam-ai/bikeshare-cli/internal/ui"
)

// selectFlags are the city, month and day flags shared by the commands.
type selectFlags struct {
	city  string
	month string
	day   string
}

// selection is a validated city, month and day choice.
type selection struct {
	city  catalog.City
	month filter.MonthSelector
	day   filter.DaySelector
}

func (s selection) String() string {
	return fmt.Sprintf("%s, month: %s, day: %s", s.city.Name, s.month, s.day)
}

func addSelectFlags(cmd *cobra.Command, f *selectFlags) {
	cmd.Flags().StringVarP(&f.city, "city", "c", "", "city to analyze (see 'bikeshare cities')")
	cmd.Flags().StringVarP(&f.month, "month", "m", filter.All, "month name or \"all\"")
	cmd.Flags().StringVarP(&f.day, "day", "d", filter.All, "day of week or \"all\"")

	cmd.RegisterFlagCompletionFunc("city", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return catalog.Default().CityNames(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.RegisterFlagCompletionFunc("month", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return append([]string{filter.All}, filter.MonthNames()...), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.RegisterFlagCompletionFunc("day", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return catalog.DayChoices(), cobra.ShellCompDirectiveNoFileComp
	})
}

// resolve validates the flags against the catalog.
func (f selectFlags) resolve(cat *catalog.Catalog) (selection, error) {
	if strings.TrimSpace(f.city) == "" {
		return selection{}, fmt.Errorf("--city is required (one of: %s)", strings.Join(cat.CityNames(), ", "))
	}
	city, err := cat.Lookup(f.city)
	if err != nil {
		return selection{}, err
	}
	month, err := filter.ParseMonth(f.month)
	if err != nil {
		return selection{}, err
	}
	day, err := filter.ParseDay(f.day)
	if err != nil {
		return selection{}, err
	}
	return selection{city: city, month: month, day: day}, nil
}

// loadTable reads the selected city's trip file, animating a spinner on
// terminals.
func loadTable(w io.Writer, animate bool, cat *catalog.Catalog, city catalog.City) (*dataset.Table, error) {
	path := cat.Path(city)
	Debug("loading %s from %s", city.Name, path)

	var table *dataset.Table
	start := time.Now()
	err := ui.RunWithSpinner(w, animate, fmt.Sprintf("Loading %s trips", city.Name), func() error {
		var err error
		table, err = dataset.LoadFile(path, dataset.Options{City: city.Name, Demographics: city.Demographics})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", city.Name, err)
	}
	Debug("loaded %d trips in %s", table.Len(), time.Since(start))
	return table, nil
}

// loadSelection loads the selected city and applies the month and day filter.
func loadSelection(w io.Writer, animate bool, cat *catalog.Catalog, sel selection) (dataset.View, error) {
	table, err := loadTable(w, animate, cat, sel.city)
	if err != nil {
		return dataset.View{}, err
	}
	view := filter.Apply(table.All(), sel.month, sel.day)
	Debug("filter %s kept %d of %d trips", sel, view.Len(), table.Len())
	return view, nil
}
