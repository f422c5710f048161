// Package dashboard shows a bikeshare report as a full-screen panel view.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
)

// Dashboard lays out the four report sections in a two by two grid.
type Dashboard struct {
	app      *tview.Application
	title    string
	sections []tui.Section
}

// New creates a dashboard for the given sections.
func New(title string, sections []tui.Section) *Dashboard {
	return &Dashboard{
		title:    title,
		sections: sections,
	}
}

// Run blocks until the user quits with q or Esc.
func (d *Dashboard) Run() error {
	d.app = tview.NewApplication()

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			d.app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				d.app.Stop()
				return nil
			}
		}
		return event
	})

	d.app.SetRoot(d.layout(), true)
	return d.app.Run()
}

func (d *Dashboard) layout() *tview.Flex {
	header := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	header.SetText(fmt.Sprintf("\n[::b]%s[::-]", tview.Escape(d.title)))

	panels := make([]*tview.TextView, len(d.sections))
	for i, s := range d.sections {
		panels[i] = tview.NewTextView().
			SetDynamicColors(true).
			SetTextAlign(tview.AlignLeft).
			SetText(PanelText(s))
		panels[i].SetBorder(true).SetTitle(" " + s.Title + " ")
	}

	grid := tview.NewFlex().SetDirection(tview.FlexRow)
	for i := 0; i < len(panels); i += 2 {
		row := tview.NewFlex().AddItem(panels[i], 0, 1, false)
		if i+1 < len(panels) {
			row.AddItem(panels[i+1], 0, 1, false)
		}
		grid.AddItem(row, 0, 1, false)
	}

	statusBar := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[yellow]q[-] quit")

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(grid, 0, 1, false).
		AddItem(statusBar, 1, 0, false)
}

// PanelText formats a section with tview color tags.
func PanelText(s tui.Section) string {
	var sb strings.Builder
	for _, item := range s.Items {
		value := item.Value
		if value == tui.NoData {
			value = "[gray]" + value + "[-]"
		} else {
			value = tview.Escape(value)
		}
		sb.WriteString(fmt.Sprintf(" [yellow]%s:[-] %s\n", tview.Escape(item.Key), value))
	}
	return sb.String()
}
