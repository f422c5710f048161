// Package tui provides the terminal presentation of bikeshare reports.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#5A67D8", Dark: "#7C3AED"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#38B2AC", Dark: "#4FD1C5"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#38A169", Dark: "#48BB78"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#D69E2E", Dark: "#F6E05E"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#E53E3E", Dark: "#FC8181"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#718096", Dark: "#A0AEC0"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1A202C", Dark: "#F7FAFC"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#CBD5E0", Dark: "#4A5568"}
)

// Base styles
var (
	// Title style for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// SubtitleStyle for section headers
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// LabelStyle for key names in key-value pairs
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// ValueStyle for values
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// MutedStyle for less important text
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Raw-row table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	TableIndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)

// IsTTY returns true if stdout is a terminal
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInputTTY returns true if stdin is a terminal
func IsInputTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// FormatKeyValue formats a key-value pair
func FormatKeyValue(key, value string) string {
	return LabelStyle.Render(key+":") + " " + ValueStyle.Render(value)
}
