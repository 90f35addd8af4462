package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteSetResolvesSlots(t *testing.T) {
	palette := DefaultTheme().Palette

	assert.Equal(t, palette.Primary, palette.Set(PalettePrimary))
	assert.Equal(t, palette.Error, palette.Set(PaletteError))
	assert.Equal(t, palette.Surface, palette.Set(PaletteSurface))

	// Unknown slots fall back to neutral.
	assert.Equal(t, palette.Neutral, palette.Set(PaletteSlot(99)))
}

func TestSpacingScaleCells(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, 0, theme.Spacing.Cells(SpacingSizeNone))
	assert.Equal(t, 2, theme.Spacing.Cells(SpacingSizeMedium))
	assert.Equal(t, 0, theme.Spacing.Cells(SpacingSize(-1)))
	assert.Equal(t, 0, theme.Spacing.Cells(SpacingSize(100)))
}

func TestNormalizeFillsZeroSpacing(t *testing.T) {
	custom := Theme{Palette: DefaultTheme().Palette}

	normalized := custom.Normalize()

	def := DefaultTheme()
	assert.Equal(t, def.Spacing, normalized.Spacing)
	assert.Equal(t, 0, normalized.Spacing.Cells(SpacingSizeNone))
}

func TestSetThemeInstallsNormalizedTheme(t *testing.T) {
	t.Cleanup(ResetTheme)

	custom := DefaultTheme()
	custom.Palette.Primary.Base.Dark = "#ff00ff"
	custom.Spacing[int(SpacingSizeMedium)] = 0

	SetTheme(custom)

	installed := GetTheme()
	assert.Equal(t, "#ff00ff", installed.Palette.Primary.Base.Dark)
	assert.Equal(t, DefaultTheme().Spacing.Cells(SpacingSizeMedium), installed.Spacing.Cells(SpacingSizeMedium))
}

func TestBorderVariantMapping(t *testing.T) {
	assert.NotEqual(t, BorderVariantRounded.Border(), BorderVariantThick.Border())
	assert.NotEqual(t, BorderVariantNormal.Border(), BorderVariantDouble.Border())
}
