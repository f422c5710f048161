package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// maxCellWidth caps station names so a page fits a typical terminal.
const maxCellWidth = 28

// RowHeaders returns the raw-row column names, including the derived ones.
func RowHeaders(demographics bool) []string {
	headers := []string{
		"",
		dataset.ColumnStartTime,
		dataset.ColumnEndTime,
		dataset.ColumnTripDuration,
		dataset.ColumnStartStation,
		dataset.ColumnEndStation,
		dataset.ColumnUserType,
	}
	if demographics {
		headers = append(headers, dataset.ColumnGender, dataset.ColumnBirthYear)
	}
	return append(headers, "month", "day_of_week", "hour")
}

// RowCells returns the cells of one raw row. index is the row position in
// the view.
func RowCells(index int, t dataset.Trip, demographics bool) []string {
	cells := []string{
		strconv.Itoa(index),
		t.StartTime.Format("2006-01-02 15:04:05"),
		t.EndTime,
		strconv.FormatFloat(t.Duration, 'f', -1, 64),
		truncate(t.StartStation),
		truncate(t.EndStation),
		t.UserType,
	}
	if demographics {
		rider, _ := t.Rider()
		year := ""
		if rider.HasBirthYear {
			year = strconv.Itoa(rider.BirthYear)
		}
		cells = append(cells, rider.Gender, year)
	}
	return append(cells,
		strconv.Itoa(int(t.Month())),
		t.DayOfWeek(),
		strconv.Itoa(t.Hour()),
	)
}

// RenderPage draws the page of v under the cursor as a table.
func RenderPage(v dataset.View, c dataset.Cursor) string {
	trips := v.Page(c)
	if len(trips) == 0 {
		return MutedStyle.Render("No more rows.")
	}

	demographics := v.HasDemographics()
	rows := make([][]string, len(trips))
	for i, t := range trips {
		rows[i] = RowCells(c.Offset+i, t, demographics)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(RowHeaders(demographics)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 0:
				return TableIndexStyle
			default:
				return TableCellStyle
			}
		})
	return t.Render()
}

func truncate(s string) string {
	return runewidth.Truncate(s, maxCellWidth, "…")
}
