package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant specifies the severity of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// Alert is a bordered notification message with a severity icon.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
	width   int
}

// NewAlert creates a new informational alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{message: message, variant: AlertVariantInfo, icon: "ℹ"}
}

// WithVariant sets the alert variant and its matching icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantWarning:
		a.icon = "⚠"
	case AlertVariantError:
		a.icon = "✗"
	default:
		a.icon = "ℹ"
	}
	return a
}

// WithTitle sets an optional bold title line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithWidth fixes the alert's outer width.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	slot := alertSlot(a.variant)

	line := a.icon + " " + a.message
	body := line
	if a.title != "" {
		titleStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantTitle), Foreground(slot))
		body = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(a.title), line)
	}

	style := Style(
		lipgloss.NewStyle(),
		Border(BorderVariantNormal),
		BorderTint(slot),
		Foreground(slot),
		Padding(SpacingSizeExtraSmall),
	)
	if a.width > 0 {
		style = style.Width(a.width)
	}
	return style.Render(body)
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantWarning:
		return PaletteWarning
	case AlertVariantError:
		return PaletteError
	default:
		return PaletteInfo
	}
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}
