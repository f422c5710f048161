// internal/ui/interactive.go
package ui

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

// ErrCanceled is returned when the user quits a prompt without answering.
var ErrCanceled = errors.New("prompt canceled")

// --- Selector Component ---

type selectorModel struct {
	question string
	cursor   int
	choices  []string
	choice   string
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "enter":
			m.choice = m.choices[m.cursor]
			return m, tea.Quit

		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % len(m.choices)

		case "up", "k", "shift+tab":
			m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			m.cursor = len(m.choices) - 1
		}
	}
	return m, nil
}

func (m selectorModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.question + "\n\n")

	for i, choice := range m.choices {
		cursor := "  "
		if m.cursor == i {
			cursor = color.CyanString("> ")
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor, choice))
	}

	sb.WriteString("\n(Use arrow keys to navigate, enter to select, q to quit)\n")
	return sb.String()
}

// --- Text Input Component ---

type textInputModel struct {
	question  string
	textInput textinput.Model
	canceled  bool
}

func newTextInput(question, placeholder string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return textInputModel{
		question:  question,
		textInput: ti,
	}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n(esc to quit)",
		m.question,
		m.textInput.View(),
	)
}

// --- Public Functions to Run Prompts ---

// AskSelect presents the user with a list of choices and returns the selected one.
func AskSelect(question string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for %q", question)
	}
	p := tea.NewProgram(selectorModel{question: question, choices: choices})
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	result := m.(selectorModel).choice
	if result == "" {
		return "", ErrCanceled
	}
	return result, nil
}

// AskInput presents the user with a text input field.
func AskInput(question, placeholder string) (string, error) {
	p := tea.NewProgram(newTextInput(question, placeholder))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	result := m.(textInputModel)
	if result.canceled {
		return "", ErrCanceled
	}
	return strings.TrimSpace(result.textInput.Value()), nil
}

// AskChoice asks for free text until the answer matches one of choices,
// ignoring case. Rejected answers print a retry notice to w.
func AskChoice(w io.Writer, question string, choices []string) (string, error) {
	return askUntilValid(w, choices, func() (string, error) {
		return AskInput(question, strings.Join(choices, ", "))
	})
}

// askUntilValid keeps calling ask until it returns a member of choices,
// compared without case. The choice is returned as spelled in choices.
func askUntilValid(w io.Writer, choices []string, ask func() (string, error)) (string, error) {
	status := NewStatusLine(w)
	for {
		answer, err := ask()
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if i := slices.IndexFunc(choices, func(c string) bool { return strings.EqualFold(c, answer) }); i >= 0 {
			return choices[i], nil
		}
		status.Warning("Please try again.")
	}
}

// AskConfirm asks a yes/no question. Quitting the prompt counts as no.
func AskConfirm(question string) (bool, error) {
	answer, err := AskSelect(question, []string{"yes", "no"})
	if errors.Is(err, ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
