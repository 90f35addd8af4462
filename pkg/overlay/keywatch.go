package overlay

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBroker fans document-level key events out to the observers of currently
// open dialogs. The host application feeds it from its update loop, usually
// through the package-level Dispatch helper.
type KeyBroker struct {
	mu     sync.RWMutex
	subs   map[int]func()
	nextID int
}

// NewKeyBroker creates an empty broker.
func NewKeyBroker() *KeyBroker {
	return &KeyBroker{subs: make(map[int]func())}
}

func (b *KeyBroker) subscribe(onEscape func()) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[b.nextID] = onEscape
	return b.nextID
}

func (b *KeyBroker) unsubscribe(id int) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

// ListenerCount returns the number of currently attached observers.
func (b *KeyBroker) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dispatch routes a key message to attached observers. Each distinct Escape
// press invokes every attached handler exactly once. It reports whether any
// handler consumed the event.
func (b *KeyBroker) Dispatch(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyEsc {
		return false
	}

	b.mu.RLock()
	handlers := make([]func(), 0, len(b.subs))
	for _, handler := range b.subs {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler()
	}
	return len(handlers) > 0
}

// KeyObserver binds one dialog's escape handling to a broker for exactly the
// interval that dialog is open. Attach and Detach are idempotent so repeated
// lifecycle transitions cannot leak or double-register a listener.
type KeyObserver struct {
	broker   *KeyBroker
	id       int
	attached bool
}

// NewKeyObserver creates an observer bound to the given broker.
func NewKeyObserver(broker *KeyBroker) *KeyObserver {
	return &KeyObserver{broker: broker}
}

// Attach installs the escape handler. No-op if already attached.
func (o *KeyObserver) Attach(onEscape func()) {
	if o.attached {
		return
	}
	o.id = o.broker.subscribe(onEscape)
	o.attached = true
}

// Detach removes the escape handler. No-op if not attached.
func (o *KeyObserver) Detach() {
	if !o.attached {
		return
	}
	o.broker.unsubscribe(o.id)
	o.attached = false
}

// Attached reports whether the observer currently has a listener installed.
func (o *KeyObserver) Attached() bool {
	return o.attached
}
