package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lanternui/lantern/pkg/ui"
)

// StackDirection controls the axis a stack lays its children along.
type StackDirection int

const (
	StackVertical StackDirection = iota
	StackHorizontal
)

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	children  []ui.Renderable
	direction StackDirection
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{children: children, direction: StackVertical, align: lipgloss.Left}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	s := NewStack(children...)
	s.direction = StackHorizontal
	s.align = lipgloss.Top
	return s
}

// WithGap sets the gap between children in cells.
func (s *Stack) WithGap(gap int) *Stack {
	if gap >= 0 {
		s.gap = gap
	}
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// View renders the stack.
func (s *Stack) View() string {
	if len(s.children) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(s.children)*2-1)
	for i, child := range s.children {
		if i > 0 && s.gap > 0 {
			rendered = append(rendered, s.gapFiller())
		}
		rendered = append(rendered, child.View())
	}

	if s.direction == StackHorizontal {
		return lipgloss.JoinHorizontal(s.align, rendered...)
	}
	return lipgloss.JoinVertical(s.align, rendered...)
}

func (s *Stack) gapFiller() string {
	if s.direction == StackHorizontal {
		return strings.Repeat(" ", s.gap)
	}
	return strings.Repeat("\n", s.gap-1)
}

// Spacer produces empty space of the given number of cells.
type Spacer struct {
	size int
}

// NewSpacer creates a spacer.
func NewSpacer(size int) *Spacer {
	if size < 1 {
		size = 1
	}
	return &Spacer{size: size}
}

// View renders the spacer as blank lines.
func (sp *Spacer) View() string {
	return strings.Repeat("\n", sp.size-1)
}

// Divider is a horizontal rule.
type Divider struct {
	width int
	char  string
}

// HorizontalDivider creates a divider using the default rule character.
func HorizontalDivider() *Divider {
	return &Divider{width: 24, char: "─"}
}

// WithWidth sets the divider width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	if width > 0 {
		d.width = width
	}
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	style := Style(lipgloss.NewStyle(), MutedForeground(PaletteNeutral))
	return style.Render(strings.Repeat(d.char, d.width))
}
