package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerVariant selects one of the preset spinner animations.
type SpinnerVariant int

const (
	SpinnerVariantDot SpinnerVariant = iota
	SpinnerVariantLine
	SpinnerVariantPoints
	SpinnerVariantPulse
)

// Spinner wraps the bubbles spinner with theme styling and an optional label.
type Spinner struct {
	model spinner.Model
	label string
}

// NewSpinner creates a themed spinner.
func NewSpinner(variant SpinnerVariant) *Spinner {
	m := spinner.New()
	m.Spinner = spinnerPreset(variant)
	m.Style = Style(lipgloss.NewStyle(), Foreground(PalettePrimary))
	return &Spinner{model: m}
}

// WithLabel sets the text rendered after the spinner frame.
func (s *Spinner) WithLabel(label string) *Spinner {
	s.label = label
	return s
}

// Tick returns the command that advances the spinner animation.
func (s *Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the spinner on tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders the current spinner frame and label.
func (s *Spinner) View() string {
	if s.label == "" {
		return s.model.View()
	}
	return s.model.View() + " " + s.label
}

func spinnerPreset(variant SpinnerVariant) spinner.Spinner {
	switch variant {
	case SpinnerVariantLine:
		return spinner.Line
	case SpinnerVariantPoints:
		return spinner.Points
	case SpinnerVariantPulse:
		return spinner.Pulse
	default:
		return spinner.Dot
	}
}
