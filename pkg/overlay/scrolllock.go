package overlay

import "sync"

// Scroll modes understood by the built-in surface. Custom surfaces may use
// any descriptor strings they like; the lock restores whatever it captured.
const (
	ScrollModeFree   = "free"
	ScrollModeLocked = "locked"
)

// Surface abstracts the scrollable surface that sits beneath open dialogs.
// The root model of a host application typically implements it by freezing
// its viewport while the mode is ScrollModeLocked.
type Surface interface {
	ScrollMode() string
	SetScrollMode(mode string)
}

// MemorySurface is a Surface backed by a plain string. It is the default
// surface for applications that poll the scroll mode from their update loop,
// and doubles as the test double for lock behaviour.
type MemorySurface struct {
	mu   sync.Mutex
	mode string
}

// NewMemorySurface creates a surface in the free scroll mode.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{mode: ScrollModeFree}
}

// ScrollMode returns the current scroll mode.
func (s *MemorySurface) ScrollMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetScrollMode replaces the current scroll mode.
func (s *MemorySurface) SetScrollMode(mode string) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

// ScrollLock is a reference-counted lock on a surface's scroll mode. The
// first acquisition captures the surface's current mode before overriding
// it, and the final release restores the captured mode exactly, so a stack
// of dialogs never clobbers the state that preceded the first of them.
type ScrollLock struct {
	mu       sync.Mutex
	surface  Surface
	count    int
	previous string
}

// NewScrollLock creates a lock over the given surface.
func NewScrollLock(surface Surface) *ScrollLock {
	return &ScrollLock{surface: surface}
}

// Acquire increments the lock count. On the 0→1 transition the surface's
// current mode is captured and replaced with ScrollModeLocked.
func (l *ScrollLock) Acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == 0 {
		l.previous = l.surface.ScrollMode()
		l.surface.SetScrollMode(ScrollModeLocked)
	}
	l.count++
}

// Release decrements the lock count, restoring the captured mode on the 1→0
// transition. Releasing an unheld lock is a no-op; double-close is an
// expected race during fast toggle sequences, not an error.
func (l *ScrollLock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == 0 {
		return
	}
	l.count--
	if l.count == 0 {
		l.surface.SetScrollMode(l.previous)
		l.previous = ""
	}
}

// Count returns the current number of holders.
func (l *ScrollLock) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
