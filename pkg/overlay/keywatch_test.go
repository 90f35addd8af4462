package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func escMsg() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func TestKeyObserverAttachDetach(t *testing.T) {
	broker := NewKeyBroker()
	observer := NewKeyObserver(broker)

	observer.Attach(func() {})
	assert.True(t, observer.Attached())
	assert.Equal(t, 1, broker.ListenerCount())

	observer.Detach()
	assert.False(t, observer.Attached())
	assert.Equal(t, 0, broker.ListenerCount())
}

func TestKeyObserverAttachIsIdempotent(t *testing.T) {
	broker := NewKeyBroker()
	observer := NewKeyObserver(broker)

	calls := 0
	observer.Attach(func() { calls++ })
	observer.Attach(func() { calls += 100 })

	assert.Equal(t, 1, broker.ListenerCount())

	broker.Dispatch(escMsg())
	assert.Equal(t, 1, calls, "second attach must not replace or add a handler")
}

func TestKeyObserverDetachIsIdempotent(t *testing.T) {
	broker := NewKeyBroker()
	observer := NewKeyObserver(broker)

	observer.Detach()
	assert.Equal(t, 0, broker.ListenerCount())

	observer.Attach(func() {})
	observer.Detach()
	observer.Detach()
	assert.Equal(t, 0, broker.ListenerCount())
}

func TestDispatchInvokesEachListenerOncePerEscape(t *testing.T) {
	broker := NewKeyBroker()
	first := NewKeyObserver(broker)
	second := NewKeyObserver(broker)

	firstCalls, secondCalls := 0, 0
	first.Attach(func() { firstCalls++ })
	second.Attach(func() { secondCalls++ })

	assert.True(t, broker.Dispatch(escMsg()))
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, secondCalls)

	assert.True(t, broker.Dispatch(escMsg()))
	assert.Equal(t, 2, firstCalls)
	assert.Equal(t, 2, secondCalls)
}

func TestDispatchIgnoresOtherKeys(t *testing.T) {
	broker := NewKeyBroker()
	observer := NewKeyObserver(broker)

	calls := 0
	observer.Attach(func() { calls++ })

	assert.False(t, broker.Dispatch(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, broker.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.Equal(t, 0, calls)
}

func TestDispatchWithNoListeners(t *testing.T) {
	broker := NewKeyBroker()
	assert.False(t, broker.Dispatch(escMsg()))
}
