package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colours for one semantic palette slot. Base is the
// slot's fill colour, OnBase is a foreground guaranteed to be readable on top
// of Base, and Muted is a low-emphasis companion for borders and hints.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// PaletteSlot identifies a semantic colour slot in the theme.
type PaletteSlot int

const (
	PalettePrimary PaletteSlot = iota
	PaletteSecondary
	PaletteSuccess
	PaletteWarning
	PaletteError
	PaletteInfo
	PaletteNeutral
	PaletteSurface
)

// Palette maps semantic slots to colour sets.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Success   ColourSet
	Warning   ColourSet
	Error     ColourSet
	Info      ColourSet
	Neutral   ColourSet
	Surface   ColourSet
}

// Set returns the colour set for the given slot.
func (p Palette) Set(slot PaletteSlot) ColourSet {
	switch slot {
	case PalettePrimary:
		return p.Primary
	case PaletteSecondary:
		return p.Secondary
	case PaletteSuccess:
		return p.Success
	case PaletteWarning:
		return p.Warning
	case PaletteError:
		return p.Error
	case PaletteInfo:
		return p.Info
	case PaletteNeutral:
		return p.Neutral
	case PaletteSurface:
		return p.Surface
	default:
		return p.Neutral
	}
}

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

// SpacingScale maps spacing tokens to cell counts.
type SpacingScale [spacingSizeCount]int

// Cells returns the cell count for the given token, clamped into range.
func (s SpacingScale) Cells(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		return 0
	}
	return s[index]
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantCode
	TypographyVariantFaint
)

// BorderVariant selects a border treatment from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// Border returns the lipgloss border for a variant.
func (v BorderVariant) Border() lipgloss.Border {
	switch v {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	case BorderVariantDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Theme is an immutable bundle of palette, spacing and typography data. Copy
// it, adjust fields, and call Normalize before installing a custom theme.
type Theme struct {
	Palette Palette
	Spacing SpacingScale
}

// Normalize fills any zero-valued spacing entries with the default scale so a
// partially-specified custom theme still renders sensibly.
func (t Theme) Normalize() Theme {
	def := DefaultTheme()
	for i := range t.Spacing {
		if t.Spacing[i] == 0 && i != int(SpacingSizeNone) {
			t.Spacing[i] = def.Spacing[i]
		}
	}
	return t
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the built-in lantern theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: Palette{
			Primary:   ColourSet{Base: adaptive("#2563eb", "#3b82f6"), OnBase: adaptive("#ffffff", "#eff6ff"), Muted: adaptive("#93c5fd", "#1e40af")},
			Secondary: ColourSet{Base: adaptive("#7c3aed", "#8b5cf6"), OnBase: adaptive("#ffffff", "#f5f3ff"), Muted: adaptive("#c4b5fd", "#4c1d95")},
			Success:   ColourSet{Base: adaptive("#16a34a", "#22c55e"), OnBase: adaptive("#ffffff", "#f0fdf4"), Muted: adaptive("#86efac", "#14532d")},
			Warning:   ColourSet{Base: adaptive("#d97706", "#f59e0b"), OnBase: adaptive("#ffffff", "#fffbeb"), Muted: adaptive("#fcd34d", "#78350f")},
			Error:     ColourSet{Base: adaptive("#dc2626", "#ef4444"), OnBase: adaptive("#ffffff", "#fef2f2"), Muted: adaptive("#fca5a5", "#7f1d1d")},
			Info:      ColourSet{Base: adaptive("#0891b2", "#06b6d4"), OnBase: adaptive("#ffffff", "#ecfeff"), Muted: adaptive("#67e8f9", "#164e63")},
			Neutral:   ColourSet{Base: adaptive("#475569", "#64748b"), OnBase: adaptive("#f8fafc", "#f1f5f9"), Muted: adaptive("#cbd5e1", "#1e293b")},
			Surface:   ColourSet{Base: adaptive("#f1f5f9", "#1e293b"), OnBase: adaptive("#0f172a", "#e2e8f0"), Muted: adaptive("#e2e8f0", "#334155")},
		},
		Spacing: SpacingScale{0, 1, 1, 2, 3, 4},
	}
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// GetTheme returns the currently installed theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetTheme installs a theme process-wide. The theme is normalized first.
func SetTheme(theme Theme) {
	normalized := theme.Normalize()
	themeMu.Lock()
	currentTheme = normalized
	themeMu.Unlock()
}

// ResetTheme restores the default theme. Intended for tests.
func ResetTheme() {
	SetTheme(DefaultTheme())
}
