// Package overlay implements lantern's modal dialog subsystem: an
// externally-owned open/closed lifecycle wired to three shared resources —
// a reference-counted scroll lock, a global escape-key broker, and a portal
// that renders dialog content at a detached mount point above the base view.
//
// The caller owns the open flag. A dialog never closes itself; backdrop
// clicks and Escape only invoke OnCloseRequested, and the caller responds
// by calling SetOpen(false).
//
//	dlg := overlay.New(overlay.Options{
//	    Title:            "Confirm delete",
//	    Size:             overlay.SizeMedium,
//	    Content:          components.NewText("This cannot be undone."),
//	    OnCloseRequested: func() { app.closeDialog() },
//	})
//
//	// In Update():
//	overlay.Dispatch(msg) // escape handling
//	dlg.Update(msg)       // viewport + mouse hit-testing
//
//	// In View():
//	return overlay.Compose(baseView, width, height)
//
// Open and close transitions apply their side effects in a fixed order
// (lock, listener, mount on open; the reverse on close) so a listener is
// never attached without an active lock and content is never visible
// without one. All lifecycle operations are idempotent; redundant toggles,
// releases and detaches are no-ops rather than errors.
package overlay
