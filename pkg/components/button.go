package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the visual treatment of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantWarning
	ButtonVariantError
	ButtonVariantInfo
	ButtonVariantMuted
)

// ButtonSize represents different button sizes.
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Focus    bool
}

// Button is a visual button component.
type Button struct {
	BaseComponent
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// SimpleButton creates a primary medium button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{Variant: ButtonVariantPrimary, Size: ButtonSizeMedium})
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state.
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// WithAppliers adds extra theme-aware style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// View renders the button.
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

func (b *Button) buildStyle() lipgloss.Style {
	appliers := append(buttonVariantAppliers(b.options.Variant), buttonSizeAppliers(b.options.Size)...)
	appliers = append(appliers, b.appliers...)
	style := Style(lipgloss.NewStyle(), appliers...)

	theme := GetTheme()
	if b.options.Disabled {
		style = Style(style, Border(BorderVariantNormal))
		style = style.Faint(true)
		style = style.BorderForeground(theme.Palette.Neutral.Muted)
	} else if b.options.Focus {
		style = Style(style, Border(BorderVariantThick))
		style = style.BorderForeground(theme.Palette.Primary.Base)
	}

	return style
}

func buttonVariantAppliers(variant ButtonVariant) []StyleFunc {
	slot := PalettePrimary
	switch variant {
	case ButtonVariantSecondary:
		slot = PaletteSecondary
	case ButtonVariantSuccess:
		slot = PaletteSuccess
	case ButtonVariantWarning:
		slot = PaletteWarning
	case ButtonVariantError:
		slot = PaletteError
	case ButtonVariantInfo:
		slot = PaletteInfo
	case ButtonVariantMuted:
		slot = PaletteNeutral
	}
	return []StyleFunc{
		Background(slot),
		Border(BorderVariantRounded),
		BorderTint(slot),
		Typography(TypographyVariantEmphasis),
	}
}

func buttonSizeAppliers(size ButtonSize) []StyleFunc {
	switch size {
	case ButtonSizeSmall:
		return []StyleFunc{PaddingX(SpacingSizeSmall)}
	case ButtonSizeLarge:
		return []StyleFunc{PaddingX(SpacingSizeLarge), PaddingY(SpacingSizeExtraSmall)}
	default:
		return []StyleFunc{PaddingX(SpacingSizeMedium)}
	}
}

// ButtonGroup renders a horizontal row of buttons.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a button group with default spacing.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 1}
}

// WithSpacing sets the gap between buttons in cells.
func (g *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	if spacing >= 0 {
		g.spacing = spacing
	}
	return g
}

// Add appends buttons to the group.
func (g *ButtonGroup) Add(buttons ...*Button) *ButtonGroup {
	g.buttons = append(g.buttons, buttons...)
	return g
}

// View renders the buttons side by side.
func (g *ButtonGroup) View() string {
	if len(g.buttons) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", g.spacing)
	rendered := make([]string, 0, len(g.buttons)*2-1)
	for i, button := range g.buttons {
		if i > 0 {
			rendered = append(rendered, gap)
		}
		rendered = append(rendered, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}
