package dashboard

import (
	"strings"
	"testing"

	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
)

func TestPanelText(t *testing.T) {
	text := PanelText(tui.Section{
		Title: "Trip Duration",
		Items: []tui.KeyValue{
			{Key: "Total travel time", Value: "300.00 seconds (5m0s)"},
			{Key: "Average travel time", Value: tui.NoData},
		},
	})

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != " [yellow]Total travel time:[-] 300.00 seconds (5m0s)" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != " [yellow]Average travel time:[-] [gray]no data[-]" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestPanelTextEscapesTags(t *testing.T) {
	text := PanelText(tui.Section{Items: []tui.KeyValue{{Key: "Station", Value: "Dock [A]"}}})
	if strings.Contains(text, "Dock [A]") {
		t.Errorf("value should be escaped: %q", text)
	}
}

func TestLayoutBuilds(t *testing.T) {
	d := New("chicago", []tui.Section{{Title: "One"}, {Title: "Two"}, {Title: "Three"}})
	if d.layout() == nil {
		t.Fatal("layout returned nil")
	}
}
