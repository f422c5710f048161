// internal/ui/spinner.go
package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a one-line status while a dataset loads
type Spinner struct {
	mu        sync.Mutex
	writer    io.Writer
	message   string
	running   bool
	done      chan struct{}
	stopped   chan struct{}
	startTime time.Time
}

// NewSpinner creates a spinner writing to w
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{writer: w}
}

// Start begins the animation with a message
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.message = message
	s.running = true
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	s.startTime = time.Now()

	go s.animate(s.done, s.stopped)
}

// Stop ends the animation and prints finalMessage, if any
func (s *Spinner) Stop(finalMessage string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	stopped := s.stopped
	s.mu.Unlock()

	<-stopped
	fmt.Fprint(s.writer, "\r\033[K")
	if finalMessage != "" {
		fmt.Fprintln(s.writer, finalMessage)
	}
}

// Success stops with a green checkmark
func (s *Spinner) Success(message string) {
	s.Stop(color.GreenString("✓") + " " + message)
}

// Fail stops with a red X
func (s *Spinner) Fail(message string) {
	s.Stop(color.RedString("✗") + " " + message)
}

func (s *Spinner) animate(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			message := s.message
			elapsed := time.Since(s.startTime)
			s.mu.Unlock()

			line := color.CyanString(frames[i%len(frames)]) + " " + message
			if elapsed > time.Second {
				line += color.HiBlackString(" (%s)", formatDuration(elapsed))
			}
			fmt.Fprint(s.writer, "\r\033[K"+line)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// RunWithSpinner runs fn while animating message on w. When animate is false
// only the final status line is printed, which keeps piped output clean.
func RunWithSpinner(w io.Writer, animate bool, message string, fn func() error) error {
	if !animate {
		err := fn()
		status := NewStatusLine(w)
		if err != nil {
			status.Fail(message + " - failed")
			return err
		}
		status.Success(message)
		return nil
	}

	spinner := NewSpinner(w)
	spinner.Start(message)
	if err := fn(); err != nil {
		spinner.Fail(message + " - failed")
		return err
	}
	spinner.Success(message)
	return nil
}

// StatusLine prints one-line status updates without animation
type StatusLine struct {
	writer io.Writer
}

// NewStatusLine creates a status line writing to w
func NewStatusLine(w io.Writer) *StatusLine {
	return &StatusLine{writer: w}
}

// Success prints a success status
func (sl *StatusLine) Success(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.GreenString("✓"), tui.SuccessStyle.Render(message))
}

// Fail prints a failure status
func (sl *StatusLine) Fail(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.RedString("✗"), tui.ErrorStyle.Render(message))
}

// Warning prints a warning status
func (sl *StatusLine) Warning(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.YellowString("⚠"), tui.WarningStyle.Render(message))
}
