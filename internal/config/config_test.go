package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternui/lantern/pkg/overlay"
)

func TestParseFullConfig(t *testing.T) {
	raw := []byte(`
theme:
  primary:
    light: "#1d4ed8"
    dark: "#60a5fa"
  error:
    dark: "#f87171"
dialog:
  dismiss_on_backdrop: false
  size: lg
log:
  level: debug
  pretty: true
`)

	cfg, err := Parse(raw)
	require.NoError(t, err)

	theme := cfg.BuildTheme()
	assert.Equal(t, "#1d4ed8", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#60a5fa", theme.Palette.Primary.Base.Dark)
	assert.Equal(t, "#f87171", theme.Palette.Error.Base.Dark)

	policy := cfg.DismissPolicy()
	assert.False(t, policy.OnBackdrop)
	assert.True(t, policy.OnEscape, "unset flag keeps its default")

	assert.Equal(t, overlay.SizeLarge, cfg.DialogSize())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestParseEmptyConfig(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyConfig)
}

func TestParseRejectsInvalidColour(t *testing.T) {
	raw := []byte(`
theme:
  primary:
    dark: "not-a-colour"
`)

	_, err := Parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate")
}

func TestParseRejectsUnknownSize(t *testing.T) {
	raw := []byte(`
dialog:
  size: enormous
`)

	_, err := Parse(raw)
	require.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("dialog: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestDefaultsWhenSectionsOmitted(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  level: warn\n"))
	require.NoError(t, err)

	policy := cfg.DismissPolicy()
	assert.Equal(t, overlay.DefaultDismissPolicy(), policy)
	assert.Equal(t, overlay.SizeMedium, cfg.DialogSize())

	theme := cfg.BuildTheme()
	assert.NotEmpty(t, theme.Palette.Primary.Base.Dark)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/lantern.yaml")
	require.Error(t, err)
}
