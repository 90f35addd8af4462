package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lanternui/lantern/pkg/components"
	"github.com/lanternui/lantern/pkg/ui"
)

// Logger receives debug-level lifecycle events. internal/logger satisfies it;
// any structured logger with a Debug method will do.
type Logger interface {
	Debug(msg string)
}

// Size selects the dialog's target width.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

// Width returns the target outer width for the size.
func (s Size) Width() int {
	switch s {
	case SizeSmall:
		return 32
	case SizeLarge:
		return 64
	case SizeExtraLarge:
		return 78
	default:
		return 48
	}
}

// Options configures a Dialog at construction time.
type Options struct {
	Title string
	Size  Size
	// Dismiss overrides the dismissal policy; nil means both gestures are
	// allowed, matching DefaultDismissPolicy.
	Dismiss *DismissPolicy
	Content ui.Renderable
	Footer  ui.Renderable

	// OnCloseRequested is invoked when a backdrop click or Escape satisfies
	// the dismissal policy. The caller owns the open flag and must call
	// SetOpen(false) in response; the dialog never closes itself.
	OnCloseRequested func()

	// Collaborators default to the package-level shared instances.
	Lock   *ScrollLock
	Broker *KeyBroker
	Portal *Portal

	Logger Logger
}

// Dialog is a modal overlay with an externally-owned open flag. Opening
// acquires the scroll lock, attaches the escape observer when the policy
// allows it, then mounts into the portal; closing undoes the three in
// reverse order so content is never visible without an active lock.
type Dialog struct {
	opts     Options
	ctrl     DismissController
	observer *KeyObserver
	handle   Handle

	open      bool
	viewportW int
	viewportH int
	box       Rect

	log Logger
}

// New creates a closed dialog. Call SetOpen to run the open transition.
func New(opts Options) *Dialog {
	if opts.Lock == nil {
		opts.Lock = DefaultScrollLock()
	}
	if opts.Broker == nil {
		opts.Broker = DefaultKeyBroker()
	}
	if opts.Portal == nil {
		opts.Portal = DefaultPortal()
	}
	policy := DefaultDismissPolicy()
	if opts.Dismiss != nil {
		policy = *opts.Dismiss
	}
	return &Dialog{
		opts:      opts,
		ctrl:      NewDismissController(policy),
		observer:  NewKeyObserver(opts.Broker),
		viewportW: components.MinWidth,
		viewportH: components.MinHeight,
		log:       opts.Logger,
	}
}

// Open reports whether the dialog is currently open.
func (d *Dialog) Open() bool {
	return d.open
}

// SetOpen drives the open/closed transition. Redundant calls are no-ops, so
// rapid toggling never double-applies a side effect.
func (d *Dialog) SetOpen(open bool) {
	if open == d.open {
		return
	}
	if open {
		d.enterOpen()
	} else {
		d.exitOpen()
	}
}

// Teardown closes the dialog if it is still open. Call it when the owning
// model is discarded so a dialog destroyed mid-open cannot leak its lock,
// listener, or mounted layer.
func (d *Dialog) Teardown() {
	d.SetOpen(false)
}

func (d *Dialog) enterOpen() {
	d.open = true
	d.opts.Lock.Acquire()
	if d.ctrl.ShouldDismissOnEscape() {
		d.observer.Attach(d.requestClose)
	}
	d.handle = d.opts.Portal.Mount(d)
	if d.log != nil {
		d.log.Debug("dialog opened: " + d.opts.Title)
	}
}

func (d *Dialog) exitOpen() {
	d.open = false
	d.opts.Portal.Unmount(d.handle)
	d.handle = 0
	d.observer.Detach()
	d.opts.Lock.Release()
	if d.log != nil {
		d.log.Debug("dialog closed: " + d.opts.Title)
	}
}

func (d *Dialog) requestClose() {
	if !d.open {
		return
	}
	if d.opts.OnCloseRequested != nil {
		d.opts.OnCloseRequested()
	}
}

// SetViewport records the terminal dimensions used for hit-testing and
// width clamping. Call it on tea.WindowSizeMsg.
func (d *Dialog) SetViewport(width, height int) {
	if width > 0 {
		d.viewportW = width
	}
	if height > 0 {
		d.viewportH = height
	}
}

// ContentRect returns the screen rect of the dialog box from its most recent
// render. Meaningful only while open.
func (d *Dialog) ContentRect() Rect {
	return d.box
}

// Update routes host events to the dialog. Window sizes are always tracked;
// mouse clicks are hit-tested only while open. Interior clicks are consumed
// without effect so they cannot bubble into a backdrop dismissal.
func (d *Dialog) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetViewport(msg.Width, msg.Height)
	case tea.MouseMsg:
		if !d.open {
			return
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return
		}
		if d.ctrl.ClassifyClick(d.box, msg.X, msg.Y) == ClickInterior {
			return
		}
		if d.ctrl.ShouldDismissOnBackdrop() {
			d.requestClose()
		}
	}
}

// View renders the dialog box and records its centered screen rect. A closed
// dialog renders nothing and holds no global resources.
func (d *Dialog) View() string {
	if !d.open {
		return ""
	}

	width := components.ClampWidth(d.opts.Size.Width(), d.viewportW, 2)

	var rows []string
	if d.opts.Title != "" {
		titleStyle := components.Style(
			lipgloss.NewStyle(),
			components.Typography(components.TypographyVariantTitle),
			components.Foreground(components.PalettePrimary),
		)
		rows = append(rows, titleStyle.Render(d.opts.Title))
	}
	if d.opts.Content != nil {
		rows = append(rows, d.opts.Content.View())
	}
	if d.opts.Footer != nil {
		rows = append(rows, "", d.opts.Footer.View())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	boxStyle := components.Style(
		lipgloss.NewStyle(),
		components.Border(components.BorderVariantRounded),
		components.BorderTint(components.PalettePrimary),
		components.Padding(components.SpacingSizeSmall),
	).Width(width)

	box := boxStyle.Render(body)

	// Render-then-measure: the portal centers the box, so the hit rect is
	// derived from the measured output rather than the requested width.
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	d.box = Rect{
		X: (d.viewportW - w) / 2,
		Y: (d.viewportH - h) / 2,
		W: w,
		H: h,
	}

	return box
}
