package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) for use in Bubble Tea programs.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// StatusState is the phase of a StatusSpinner.
type StatusState int

const (
	StatusIdle StatusState = iota
	StatusWorking
	StatusDone
	StatusFailed
)

// StatusSpinner is a Bubble Tea component that shows an animated message
// while work is pending and a static one once it settles. It is meant to be
// composed into a larger model.
type StatusSpinner struct {
	spinner spinner.Model
	Label   string
	State   StatusState
}

// NewStatusSpinner creates an idle status spinner.
func NewStatusSpinner() StatusSpinner {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)
	return StatusSpinner{spinner: sp}
}

// Start shows label with an animated spinner. The returned command drives
// the animation.
func (s *StatusSpinner) Start(label string) tea.Cmd {
	s.State = StatusWorking
	s.Label = label
	return s.spinner.Tick
}

// Done shows label with a success mark and stops animating.
func (s *StatusSpinner) Done(label string) {
	s.State = StatusDone
	s.Label = label
}

// Fail shows label with a failure mark and stops animating.
func (s *StatusSpinner) Fail(label string) {
	s.State = StatusFailed
	s.Label = label
}

// Clear hides the spinner.
func (s *StatusSpinner) Clear() {
	s.State = StatusIdle
	s.Label = ""
}

// Active reports whether anything is shown.
func (s StatusSpinner) Active() bool {
	return s.State != StatusIdle
}

// Update advances the animation. Ticks are dropped unless working, which
// ends the tick chain.
func (s StatusSpinner) Update(msg tea.Msg) (StatusSpinner, tea.Cmd) {
	if s.State != StatusWorking {
		return s, nil
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the current state.
func (s StatusSpinner) View() string {
	switch s.State {
	case StatusWorking:
		return s.spinner.View() + " " + s.Label
	case StatusDone:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolSuccess) + " " + s.Label
	case StatusFailed:
		return lipgloss.NewStyle().Foreground(ColorError).Render(SymbolFail) + " " + s.Label
	default:
		return ""
	}
}
