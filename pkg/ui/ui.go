// Package ui defines the minimal contracts shared by every lantern component.
package ui

// Renderable is anything that can produce terminal output. All lantern
// components implement it, which lets containers, stacks and overlay layers
// compose arbitrary content without knowing its concrete type.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to the Renderable interface.
type RenderableFunc func() string

// View renders by invoking the wrapped function.
func (f RenderableFunc) View() string {
	return f()
}

// Raw wraps a pre-rendered string as a Renderable.
func Raw(s string) Renderable {
	return RenderableFunc(func() string { return s })
}
