package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollLockAcquireCapturesAndLocks(t *testing.T) {
	surface := NewMemorySurface()
	surface.SetScrollMode("viewport:offset=42")
	lock := NewScrollLock(surface)

	lock.Acquire()

	assert.Equal(t, 1, lock.Count())
	assert.Equal(t, ScrollModeLocked, surface.ScrollMode())
}

func TestScrollLockReleaseRestoresCapturedMode(t *testing.T) {
	surface := NewMemorySurface()
	surface.SetScrollMode("viewport:offset=42")
	lock := NewScrollLock(surface)

	lock.Acquire()
	lock.Release()

	assert.Equal(t, 0, lock.Count())
	assert.Equal(t, "viewport:offset=42", surface.ScrollMode())
}

func TestScrollLockNestedHoldersRestoreOnce(t *testing.T) {
	surface := NewMemorySurface()
	lock := NewScrollLock(surface)

	counts := []int{lock.Count()}
	lock.Acquire()
	counts = append(counts, lock.Count())
	lock.Acquire()
	counts = append(counts, lock.Count())
	lock.Release()
	counts = append(counts, lock.Count())

	// Intermediate release must not restore while a holder remains.
	assert.Equal(t, ScrollModeLocked, surface.ScrollMode())

	lock.Release()
	counts = append(counts, lock.Count())

	assert.Equal(t, []int{0, 1, 2, 1, 0}, counts)
	assert.Equal(t, ScrollModeFree, surface.ScrollMode())
}

func TestScrollLockReleaseWithoutAcquireIsNoOp(t *testing.T) {
	surface := NewMemorySurface()
	lock := NewScrollLock(surface)

	lock.Release()
	lock.Release()

	assert.Equal(t, 0, lock.Count())
	assert.Equal(t, ScrollModeFree, surface.ScrollMode())
}

func TestScrollLockDoubleCloseRace(t *testing.T) {
	surface := NewMemorySurface()
	surface.SetScrollMode("custom")
	lock := NewScrollLock(surface)

	lock.Acquire()
	lock.Release()
	lock.Release() // double-close during a fast toggle is tolerated

	assert.Equal(t, 0, lock.Count())
	assert.Equal(t, "custom", surface.ScrollMode())

	// The lock still works after the redundant release.
	lock.Acquire()
	assert.Equal(t, 1, lock.Count())
	assert.Equal(t, ScrollModeLocked, surface.ScrollMode())
	lock.Release()
	assert.Equal(t, "custom", surface.ScrollMode())
}
