// cmd/explore.go
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aceteam-ai/bikeshare-cli/internal/catalog"
	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
	"github.com/aceteam-ai/bikeshare-cli/internal/stats"
	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
	"github.com/aceteam-ai/bikeshare-cli/internal/ui"
)

type exploreOptions struct {
	selectFlags
	textPrompts bool
	pageSize    int
}

var exploreOpts exploreOptions

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore one city's trips",
	Long: `Prompts for a city, a month and a day of week, prints the four
statistic groups and then offers the raw trips five rows at a time.

When --city is given, or stdin is not a terminal, the selection is read from
the flags and nothing is prompted.`,
	Example: `  # Pick everything from menus
  bikeshare explore

  # Type the answers instead, as in the classic script
  bikeshare explore --text-prompts

  # One pass without prompts
  bikeshare explore --city chicago --month march --day friday`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplore(cmd, &exploreOpts)
	},
}

func addExploreFlags(cmd *cobra.Command, opts *exploreOptions) {
	addSelectFlags(cmd, &opts.selectFlags)
	cmd.Flags().BoolVar(&opts.textPrompts, "text-prompts", false, "type answers instead of picking from a list")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", dataset.DefaultPageSize, "raw rows shown per page")
}

// prompter asks the explore questions either from menus or as free text.
type prompter struct {
	out  io.Writer
	text bool
}

func (p prompter) choose(question string, choices []string) (string, error) {
	if p.text {
		return ui.AskChoice(p.out, question, choices)
	}
	return ui.AskSelect(question, choices)
}

func (p prompter) confirm(question string) (bool, error) {
	if !p.text {
		return ui.AskConfirm(question)
	}
	answer, err := ui.AskInput(question+" Enter yes or no.", "yes")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

func (p prompter) selection(cat *catalog.Catalog) (selection, error) {
	cityName, err := p.choose("Which city would you like to review?", cat.CityNames())
	if err != nil {
		return selection{}, err
	}
	month, err := p.choose("Which month would you like to review?", cat.MonthChoices())
	if err != nil {
		return selection{}, err
	}
	day, err := p.choose("Would you like to review a specific day of the week?", catalog.DayChoices())
	if err != nil {
		return selection{}, err
	}
	return selectFlags{city: cityName, month: month, day: day}.resolve(cat)
}

func runExplore(cmd *cobra.Command, opts *exploreOptions) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	interactive := opts.city == "" && tui.IsInputTTY()
	p := prompter{out: out, text: opts.textPrompts}

	if !interactive && opts.city == "" {
		return fmt.Errorf("stdin is not a terminal; pass --city (one of: %s)", strings.Join(cat.CityNames(), ", "))
	}

	for {
		fmt.Fprintln(out, tui.TitleStyle.Render("Hello! Let's explore some US bikeshare data!"))

		var sel selection
		if interactive {
			sel, err = p.selection(cat)
		} else {
			sel, err = opts.resolve(cat)
		}
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.MutedStyle.Render(sel.String()))
		fmt.Fprintln(out, strings.Repeat("-", 40))

		view, err := loadSelection(out, tui.IsTTY(), cat, sel)
		if err != nil {
			return err
		}
		printTimedSections(out, view)

		if !interactive {
			return nil
		}
		if err := browseRows(out, p, view, opts.pageSize); err != nil {
			return err
		}

		again, err := p.confirm("Would you like to start again?")
		if errors.Is(err, ui.ErrCanceled) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// printTimedSections computes and prints each statistic group in turn, each
// followed by how long it took.
func printTimedSections(w io.Writer, v dataset.View) {
	groups := []struct {
		message string
		section func() tui.Section
	}{
		{"Calculating The Most Frequent Times of Travel...", func() tui.Section {
			return tui.TimesSection(stats.TimeOfTravel(v))
		}},
		{"Calculating The Most Popular Stations and Trip...", func() tui.Section {
			return tui.StationsSection(stats.PopularStations(v))
		}},
		{"Calculating Trip Duration...", func() tui.Section {
			return tui.DurationsSection(stats.TripDurations(v))
		}},
		{"Calculating User Stats...", func() tui.Section {
			return tui.UsersSection(stats.UserStats(v))
		}},
	}

	for _, g := range groups {
		fmt.Fprintln(w, "\n"+tui.MutedStyle.Render(g.message))
		start := time.Now()
		s := g.section()
		elapsed := time.Since(start)
		fmt.Fprint(w, s.Render())
		fmt.Fprint(w, tui.Footer(elapsed))
	}
}

// browseRows offers the raw trips one page at a time until the user
// declines or the view runs out.
func browseRows(w io.Writer, p prompter, v dataset.View, size int) error {
	question := fmt.Sprintf("Would you like to view the first %d rows of trip data?", dataset.NewCursor(size).Size)
	for c := dataset.NewCursor(size); ; c = c.Next() {
		if c.Done(v) {
			fmt.Fprintln(w, tui.MutedStyle.Render("No more rows."))
			return nil
		}
		more, err := p.confirm(question)
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		fmt.Fprintln(w, tui.RenderPage(v, c))
		question = fmt.Sprintf("Would you like to view the next %d rows?", c.Size)
	}
}

func init() {
	addExploreFlags(exploreCmd, &exploreOpts)
	rootCmd.AddCommand(exploreCmd)
}
