package components

import "github.com/charmbracelet/lipgloss"

// Text is styled text content.
type Text struct {
	BaseComponent
	content string
	bold    bool
	faint   bool
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Bold renders the text in bold.
func (t *Text) Bold() *Text {
	t.bold = true
	return t
}

// Faint renders the text dimmed.
func (t *Text) Faint() *Text {
	t.faint = true
	return t
}

// WithAppliers adds theme-aware style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Content returns the raw text content.
func (t *Text) Content() string {
	return t.content
}

// View renders the text.
func (t *Text) View() string {
	style := Style(lipgloss.NewStyle(), t.appliers...)
	if t.bold {
		style = style.Bold(true)
	}
	if t.faint {
		style = style.Faint(true)
	}
	return style.Render(t.content)
}

// EmphasisText creates bold text.
func EmphasisText(content string) *Text {
	return NewText(content).Bold()
}

// MutedText creates dimmed text.
func MutedText(content string) *Text {
	return NewText(content).Faint()
}
