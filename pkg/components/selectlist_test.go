package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []SelectItem {
	return []SelectItem{
		{ID: "btn", Label: "Buttons"},
		{ID: "card", Label: "Cards"},
		{ID: "badge", Label: "Badges"},
		{ID: "alert", Label: "Alerts"},
		{ID: "dialog", Label: "Dialogs"},
		{ID: "spinner", Label: "Spinners"},
	}
}

func TestSelectListCursorClamping(t *testing.T) {
	list := NewSelectList(sampleItems())

	list.MoveCursor(-3)
	selected, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "btn", selected.ID)

	list.MoveCursor(100)
	selected, ok = list.Selected()
	require.True(t, ok)
	assert.Equal(t, "spinner", selected.ID)
}

func TestSelectListFuzzyFilter(t *testing.T) {
	list := NewSelectList(sampleItems())

	list.SetFilter("dlg")
	selected, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "dialog", selected.ID)

	list.SetFilter("zzz")
	_, ok = list.Selected()
	assert.False(t, ok)
	assert.Contains(t, list.View(), "no items")
}

func TestSelectListFilterResetsCursor(t *testing.T) {
	list := NewSelectList(sampleItems())

	list.MoveCursor(4)
	list.SetFilter("a")

	selected, ok := list.Selected()
	require.True(t, ok)
	assert.NotEmpty(t, selected.ID)
}

func TestSelectListScrollIndicators(t *testing.T) {
	list := NewSelectList(sampleItems()).WithMaxVisible(3)

	assert.Contains(t, list.View(), "more below")

	list.MoveCursor(5)
	assert.Contains(t, list.View(), "more above")
}

func TestEmptySelectList(t *testing.T) {
	list := NewSelectList(nil)

	_, ok := list.Selected()
	assert.False(t, ok)

	list.MoveCursor(1)
	assert.Contains(t, list.View(), "no items")
}
