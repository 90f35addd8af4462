package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVStackJoinsVertically(t *testing.T) {
	stack := VStack(NewText("first"), NewText("second"))

	out := stack.View()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestVStackGapInsertsBlankLines(t *testing.T) {
	stack := VStack(NewText("a"), NewText("b")).WithGap(1)

	lines := strings.Split(stack.View(), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "", strings.TrimSpace(lines[1]))
}

func TestHStackJoinsHorizontally(t *testing.T) {
	stack := HStack(NewText("left"), NewText("right")).WithGap(2)

	out := stack.View()
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "left")
	assert.Contains(t, out, "right")
}

func TestEmptyStackRendersNothing(t *testing.T) {
	assert.Empty(t, NewStack().View())
}

func TestStackAdd(t *testing.T) {
	stack := NewStack(NewText("one"))
	stack.Add(NewText("two"), NewText("three"))

	assert.Len(t, stack.Children(), 3)
}

func TestCardRendersTitleAndChildren(t *testing.T) {
	card := NewCard(NewText("body line")).WithTitle("Settings").WithWidth(40)

	out := card.View()
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "body line")
}

func TestBadgeVariants(t *testing.T) {
	assert.Contains(t, SuccessBadge("ok").View(), "ok")
	assert.Contains(t, ErrorBadge("bad").View(), "bad")
	assert.Equal(t, "draft", InfoBadge("draft").Text())
}

func TestAlertIconsFollowVariant(t *testing.T) {
	assert.Contains(t, SuccessAlert("done").View(), "✓")
	assert.Contains(t, WarningAlert("careful").View(), "⚠")
	assert.Contains(t, ErrorAlert("broken").View(), "✗")
	assert.Contains(t, NewAlert("fyi").View(), "ℹ")
}

func TestAlertTitleRendersAboveMessage(t *testing.T) {
	out := ErrorAlert("disk full").WithTitle("Write failed").View()

	assert.Contains(t, out, "Write failed")
	assert.Contains(t, out, "disk full")
	assert.Less(t, strings.Index(out, "Write failed"), strings.Index(out, "disk full"))
}
