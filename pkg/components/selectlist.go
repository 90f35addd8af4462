package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// SelectItem is one entry in a SelectList.
type SelectItem struct {
	ID    string
	Label string
}

// SelectList is a scrollable, fuzzy-filterable list of items. The selection
// index and filter query are owned by the caller's model; the list derives
// everything else at render time.
type SelectList struct {
	items        []SelectItem
	cursor       int
	filter       string
	maxVisible   int
	scrollOffset int
	focused      bool
}

// NewSelectList creates a list over the given items.
func NewSelectList(items []SelectItem) *SelectList {
	return &SelectList{items: items, maxVisible: 5}
}

// WithMaxVisible sets how many rows are shown before scrolling.
func (l *SelectList) WithMaxVisible(n int) *SelectList {
	if n > 0 {
		l.maxVisible = n
	}
	return l
}

// SetFocused toggles focused styling of the selected row.
func (l *SelectList) SetFocused(focused bool) {
	l.focused = focused
}

// SetFilter applies a fuzzy filter query and resets the cursor.
func (l *SelectList) SetFilter(query string) {
	l.filter = query
	l.cursor = 0
	l.scrollOffset = 0
}

// MoveCursor moves the selection by delta, clamped to the visible item set.
func (l *SelectList) MoveCursor(delta int) {
	visible := l.visibleItems()
	if len(visible) == 0 {
		l.cursor = 0
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(visible) {
		l.cursor = len(visible) - 1
	}
}

// Selected returns the item under the cursor, if any.
func (l *SelectList) Selected() (SelectItem, bool) {
	visible := l.visibleItems()
	if l.cursor < 0 || l.cursor >= len(visible) {
		return SelectItem{}, false
	}
	return visible[l.cursor], true
}

func (l *SelectList) visibleItems() []SelectItem {
	if l.filter == "" {
		return l.items
	}
	labels := make([]string, len(l.items))
	for i, item := range l.items {
		labels[i] = item.Label
	}
	matches := fuzzy.Find(l.filter, labels)
	filtered := make([]SelectItem, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, l.items[match.Index])
	}
	return filtered
}

// View renders the visible window of the list.
func (l *SelectList) View() string {
	visible := l.visibleItems()
	if len(visible) == 0 {
		return MutedText("(no items)").View()
	}

	window := l.maxVisible
	if window > len(visible) {
		window = len(visible)
	}

	// Keep the cursor inside the scroll window.
	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	} else if l.cursor >= l.scrollOffset+window {
		l.scrollOffset = l.cursor - window + 1
	}

	selectedStyle := Style(lipgloss.NewStyle(), Foreground(PalettePrimary), Typography(TypographyVariantEmphasis))
	focusedStyle := Style(lipgloss.NewStyle(), Background(PalettePrimary))
	cursorStyle := Style(lipgloss.NewStyle(), Foreground(PalettePrimary))

	var sb strings.Builder
	for i := 0; i < window; i++ {
		idx := l.scrollOffset + i
		if idx >= len(visible) {
			break
		}
		item := visible[idx]

		style := lipgloss.NewStyle()
		cursor := "  "
		if idx == l.cursor {
			cursor = cursorStyle.Render("> ")
			if l.focused {
				style = focusedStyle
			} else {
				style = selectedStyle
			}
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cursor + style.Render(item.Label))
	}

	out := sb.String()
	if l.scrollOffset > 0 {
		out = MutedText("↑ more above").View() + "\n" + out
	}
	if l.scrollOffset+window < len(visible) {
		out = out + "\n" + MutedText("↓ more below").View()
	}
	return out
}
