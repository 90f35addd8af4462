package components

// Width breakpoints for responsive layout decisions.
const (
	// MinWidth is the absolute minimum terminal width the library lays out for.
	MinWidth = 80

	// CompactWidth triggers compact rendering.
	CompactWidth = 100

	// StandardWidth is the threshold for the standard layout.
	StandardWidth = 120

	// FullWidth is the threshold for the full layout.
	FullWidth = 140
)

// Height breakpoints.
const (
	MinHeight      = 24
	CompactHeight  = 30
	StandardHeight = 40
)

// WidthClass buckets a terminal width into a layout tier.
type WidthClass int

const (
	WidthClassBelowMin WidthClass = iota
	WidthClassCompact
	WidthClassStandard
	WidthClassFull
)

// ClassifyWidth maps a terminal width to its layout tier.
func ClassifyWidth(width int) WidthClass {
	switch {
	case width < MinWidth:
		return WidthClassBelowMin
	case width < StandardWidth:
		return WidthClassCompact
	case width < FullWidth:
		return WidthClassStandard
	default:
		return WidthClassFull
	}
}

// ClampWidth bounds a requested width to the available terminal width, minus
// the given horizontal reserve for borders and padding.
func ClampWidth(requested, available, reserve int) int {
	limit := available - reserve
	if limit < 0 {
		limit = 0
	}
	if requested > limit {
		return limit
	}
	return requested
}
