package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input wraps the bubbles textinput with a themed label and frame.
type Input struct {
	model textinput.Model
	label string
	width int
}

// NewInput creates a themed text input.
func NewInput(placeholder string) *Input {
	m := textinput.New()
	m.Placeholder = placeholder
	m.PromptStyle = Style(lipgloss.NewStyle(), Foreground(PalettePrimary))
	m.PlaceholderStyle = Style(lipgloss.NewStyle(), MutedForeground(PaletteNeutral))
	return &Input{model: m, width: 32}
}

// WithLabel sets the label rendered above the input.
func (in *Input) WithLabel(label string) *Input {
	in.label = label
	return in
}

// WithWidth sets the input frame width.
func (in *Input) WithWidth(width int) *Input {
	if width > 0 {
		in.width = width
	}
	return in
}

// Focus gives the input keyboard focus.
func (in *Input) Focus() tea.Cmd {
	return in.model.Focus()
}

// Blur removes keyboard focus.
func (in *Input) Blur() {
	in.model.Blur()
}

// Focused reports whether the input has keyboard focus.
func (in *Input) Focused() bool {
	return in.model.Focused()
}

// Value returns the current text.
func (in *Input) Value() string {
	return in.model.Value()
}

// SetValue replaces the current text.
func (in *Input) SetValue(value string) {
	in.model.SetValue(value)
}

// Update forwards messages to the underlying textinput.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	return cmd
}

// View renders the labelled input with a focus-aware border.
func (in *Input) View() string {
	borderTint := PaletteNeutral
	if in.model.Focused() {
		borderTint = PalettePrimary
	}
	frame := Style(
		lipgloss.NewStyle(),
		Border(BorderVariantRounded),
		BorderTint(borderTint),
		PaddingX(SpacingSizeExtraSmall),
	).Width(in.width)

	field := frame.Render(in.model.View())
	if in.label == "" {
		return field
	}
	label := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis)).Render(in.label)
	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}
