package overlay

import tea "github.com/charmbracelet/bubbletea"

// The scroll lock, key broker, and portal are deliberately process-wide:
// page scroll and detached rendering are properties of the whole terminal
// surface, not of one dialog. Dialogs default to these shared instances;
// tests construct their own.
var (
	defaultSurface = NewMemorySurface()
	defaultLock    = NewScrollLock(defaultSurface)
	defaultBroker  = NewKeyBroker()
	defaultPortal  = NewPortal()
)

// DefaultSurface returns the process-wide scroll surface.
func DefaultSurface() *MemorySurface {
	return defaultSurface
}

// DefaultScrollLock returns the process-wide scroll lock.
func DefaultScrollLock() *ScrollLock {
	return defaultLock
}

// DefaultKeyBroker returns the process-wide key broker.
func DefaultKeyBroker() *KeyBroker {
	return defaultBroker
}

// DefaultPortal returns the process-wide portal.
func DefaultPortal() *Portal {
	return defaultPortal
}

// Dispatch feeds a message from the host update loop into the default
// broker. Non-key messages are ignored. It reports whether a dialog's
// observer consumed the event.
func Dispatch(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	return defaultBroker.Dispatch(key)
}

// Compose renders the base view with any layers mounted in the default
// portal composited on top.
func Compose(base string, width, height int) string {
	return defaultPortal.Compose(base, width, height)
}
