package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValueRoundTrip(t *testing.T) {
	input := NewInput("name...")
	input.SetValue("lantern")

	assert.Equal(t, "lantern", input.Value())
	assert.Contains(t, input.View(), "lantern")
}

func TestInputFocusRoundTrip(t *testing.T) {
	input := NewInput("name...")
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}

func TestInputLabelRendersAboveField(t *testing.T) {
	out := NewInput("...").WithLabel("Workspace").View()
	assert.Contains(t, out, "Workspace")
}

func TestSpinnerLabel(t *testing.T) {
	spin := NewSpinner(SpinnerVariantLine).WithLabel("loading")
	assert.Contains(t, spin.View(), "loading")
}
