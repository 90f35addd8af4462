package components

import "github.com/charmbracelet/lipgloss"

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// Badge is a small inline status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers adds extra theme-aware style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// View renders the badge.
func (b *Badge) View() string {
	appliers := []StyleFunc{
		Background(badgeSlot(b.variant)),
		PaddingX(SpacingSizeExtraSmall),
		Typography(TypographyVariantEmphasis),
	}
	appliers = append(appliers, b.appliers...)
	return Style(lipgloss.NewStyle(), appliers...).Render(b.text)
}

func badgeSlot(variant BadgeVariant) PaletteSlot {
	switch variant {
	case BadgeVariantPrimary:
		return PalettePrimary
	case BadgeVariantSuccess:
		return PaletteSuccess
	case BadgeVariantWarning:
		return PaletteWarning
	case BadgeVariantError:
		return PaletteError
	case BadgeVariantInfo:
		return PaletteInfo
	default:
		return PaletteNeutral
	}
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantInfo)
}
