package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies a theme-aware transformation to a lipgloss style. It is
// the core abstraction behind every variant and modifier in the library.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Style applies the given style functions in order using the current theme.
func Style(base lipgloss.Style, appliers ...StyleFunc) lipgloss.Style {
	theme := GetTheme()
	for _, fn := range appliers {
		base = fn(base, theme)
	}
	return base
}

// BaseComponent carries the style plumbing shared by all components. Embed it
// in component structs to pick up the applier mechanism.
type BaseComponent struct {
	appliers []StyleFunc
}

// AddAppliers appends style appliers, copying the slice so shared component
// values do not alias each other's applier arrays.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// ComputeStyle resolves the component's style against the given theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// Background sets the background from a palette slot along with the slot's
// readable foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		set := theme.Palette.Set(slot)
		return style.Background(set.Base).Foreground(set.OnBase)
	}
}

// Foreground sets only the foreground from a palette slot.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(theme.Palette.Set(slot).Base)
	}
}

// MutedForeground sets the low-emphasis foreground of a palette slot.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Foreground(theme.Palette.Set(slot).Muted)
	}
}

// Border applies a border variant.
func Border(variant BorderVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return style
		}
		return style.Border(variant.Border())
	}
}

// BorderTint colours an already-applied border from a palette slot.
func BorderTint(slot PaletteSlot) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.BorderForeground(theme.Palette.Set(slot).Base)
	}
}

// Padding applies uniform padding from the spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		return style.Padding(theme.Spacing.Cells(size))
	}
}

// PaddingX applies horizontal padding from the spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		cells := theme.Spacing.Cells(size)
		return style.PaddingLeft(cells).PaddingRight(cells)
	}
}

// PaddingY applies vertical padding from the spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		cells := theme.Spacing.Cells(size)
		return style.PaddingTop(cells).PaddingBottom(cells)
	}
}

// MarginX applies horizontal margin from the spacing scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		cells := theme.Spacing.Cells(size)
		return style.MarginLeft(cells).MarginRight(cells)
	}
}

// Typography applies a typography variant.
func Typography(variant TypographyVariant) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		switch variant {
		case TypographyVariantTitle:
			return style.Bold(true)
		case TypographyVariantSubtitle:
			return style.Bold(true).Faint(true)
		case TypographyVariantEmphasis:
			return style.Bold(true)
		case TypographyVariantCode:
			return style.Foreground(theme.Palette.Secondary.Base)
		case TypographyVariantFaint:
			return style.Faint(true)
		default:
			return style
		}
	}
}
