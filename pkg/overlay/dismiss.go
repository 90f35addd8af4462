package overlay

// DismissPolicy controls which user gestures request dialog closure.
type DismissPolicy struct {
	OnBackdrop bool
	OnEscape   bool
}

// DefaultDismissPolicy allows both backdrop clicks and Escape.
func DefaultDismissPolicy() DismissPolicy {
	return DismissPolicy{OnBackdrop: true, OnEscape: true}
}

// Rect is a hit region in screen cells. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ClickRegion classifies where on the screen a click landed relative to an
// open dialog.
type ClickRegion int

const (
	// ClickInterior is a click inside the dialog's own content box. Interior
	// clicks are swallowed so they can never be miscounted as backdrop clicks.
	ClickInterior ClickRegion = iota
	// ClickBackdrop is a click on the dimmed area surrounding the dialog.
	ClickBackdrop
)

// DismissController turns a dialog's dismissal configuration into pure
// decisions. It holds no state beyond the policy it was constructed with.
type DismissController struct {
	policy DismissPolicy
}

// NewDismissController creates a controller for the given policy.
func NewDismissController(policy DismissPolicy) DismissController {
	return DismissController{policy: policy}
}

// ShouldDismissOnBackdrop reports whether backdrop clicks request closure.
func (c DismissController) ShouldDismissOnBackdrop() bool {
	return c.policy.OnBackdrop
}

// ShouldDismissOnEscape reports whether Escape requests closure.
func (c DismissController) ShouldDismissOnEscape() bool {
	return c.policy.OnEscape
}

// ClassifyClick resolves a click at (x, y) against the dialog's content rect.
func (c DismissController) ClassifyClick(content Rect, x, y int) ClickRegion {
	if content.Contains(x, y) {
		return ClickInterior
	}
	return ClickBackdrop
}
