package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lanternui/lantern/pkg/ui"
)

// Card is a bordered container for grouped content with an optional title.
type Card struct {
	BaseComponent
	title    string
	children []ui.Renderable
	width    int
}

// NewCard creates a card wrapping the given children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{children: children}
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithWidth fixes the card's outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers adds extra theme-aware style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children to the card.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// View renders the card.
func (c *Card) View() string {
	theme := GetTheme()

	parts := make([]string, 0, len(c.children)+1)
	if c.title != "" {
		titleStyle := Style(
			lipgloss.NewStyle(),
			Typography(TypographyVariantTitle),
			Foreground(PalettePrimary),
		)
		parts = append(parts, titleStyle.Render(c.title))
	}
	for _, child := range c.children {
		parts = append(parts, child.View())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	style := Style(
		lipgloss.NewStyle(),
		Border(BorderVariantRounded),
		BorderTint(PaletteNeutral),
		Padding(SpacingSizeSmall),
	)
	for _, fn := range c.appliers {
		style = fn(style, theme)
	}
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return style.Render(body)
}
