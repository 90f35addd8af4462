package overlay

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/lanternui/lantern/pkg/ui"
)

// Handle identifies one mounted layer. The zero handle is never issued.
type Handle int

type layer struct {
	handle  Handle
	content ui.Renderable
}

// Portal is the shared detached mount point dialogs render into instead of
// their logical position in the caller's view tree. Layers are append-only:
// later mounts sit above earlier ones.
type Portal struct {
	mu     sync.Mutex
	layers []layer
	nextID Handle
}

// NewPortal creates an empty portal.
func NewPortal() *Portal {
	return &Portal{}
}

// Mount appends content as the topmost layer and returns its handle.
func (p *Portal) Mount(content ui.Renderable) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.layers = append(p.layers, layer{handle: p.nextID, content: content})
	return p.nextID
}

// Unmount removes the layer with the given handle. Unknown or stale handles
// are a no-op.
func (p *Portal) Unmount(handle Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, l := range p.layers {
		if l.handle == handle {
			p.layers = append(p.layers[:i], p.layers[i+1:]...)
			return
		}
	}
}

// Len returns the number of mounted layers.
func (p *Portal) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.layers)
}

// Top returns the topmost layer's content, or nil when nothing is mounted.
func (p *Portal) Top() ui.Renderable {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.layers) == 0 {
		return nil
	}
	return p.layers[len(p.layers)-1].content
}

// Compose renders the screen: the base view when nothing is mounted, or the
// topmost layer centered in the given dimensions when a dialog is open.
func (p *Portal) Compose(base string, width, height int) string {
	top := p.Top()
	if top == nil {
		return base
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View())
}
