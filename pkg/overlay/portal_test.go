package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternui/lantern/pkg/ui"
)

func TestPortalMountUnmount(t *testing.T) {
	portal := NewPortal()

	handle := portal.Mount(ui.Raw("content"))
	assert.Equal(t, 1, portal.Len())

	portal.Unmount(handle)
	assert.Equal(t, 0, portal.Len())
	assert.Nil(t, portal.Top())
}

func TestPortalLaterMountsRenderAbove(t *testing.T) {
	portal := NewPortal()

	lower := portal.Mount(ui.Raw("lower"))
	portal.Mount(ui.Raw("upper"))

	top := portal.Top()
	require.NotNil(t, top)
	assert.Equal(t, "upper", top.View())

	// Removing the lower layer keeps the upper one on top.
	portal.Unmount(lower)
	assert.Equal(t, "upper", portal.Top().View())
}

func TestPortalUnmountStaleHandleIsNoOp(t *testing.T) {
	portal := NewPortal()

	handle := portal.Mount(ui.Raw("content"))
	portal.Unmount(handle)
	portal.Unmount(handle)
	portal.Unmount(Handle(999))

	assert.Equal(t, 0, portal.Len())
}

func TestPortalComposeReturnsBaseWhenEmpty(t *testing.T) {
	portal := NewPortal()
	assert.Equal(t, "base view", portal.Compose("base view", 80, 24))
}

func TestPortalComposeCentersTopLayer(t *testing.T) {
	portal := NewPortal()
	portal.Mount(ui.Raw("DIALOG"))

	out := portal.Compose("base view", 40, 9)

	assert.NotContains(t, out, "base view")
	assert.Contains(t, out, "DIALOG")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 9)
}
