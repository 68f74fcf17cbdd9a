// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// TUI shared styles.
	HeaderStyle         lipgloss.Style
	HelpStyle           lipgloss.Style
	SpinnerStyle        lipgloss.Style
	StatusBusyStyle     lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextForegroundStyle lipgloss.Style
	TextPrimaryStyle    lipgloss.Style
	TextErrorStyle      lipgloss.Style
	TextSuccessStyle    lipgloss.Style
	TextWarningStyle    lipgloss.Style
	TextSurfaceStyle    lipgloss.Style

	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// Detail screen.
	FieldLabelStyle   lipgloss.Style
	FieldValueStyle   lipgloss.Style
	GalleryFrameStyle lipgloss.Style
	GalleryEmptyStyle lipgloss.Style
	GalleryArrowStyle lipgloss.Style
	IndicatorOnStyle  lipgloss.Style
	IndicatorOffStyle lipgloss.Style

	// Overlays.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style
	ModalButtonDangerStyle   lipgloss.Style
	MenuItemStyle            lipgloss.Style
	MenuItemSelectedStyle    lipgloss.Style
	MenuItemDangerStyle      lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	ColorPool []color.Color
)

// SetTheme applies a palette and rebuilds every exported style.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	StatusBusyStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	FieldLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(12)
	FieldValueStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	GalleryFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(1, 2).
		Align(lipgloss.Center)
	GalleryEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	GalleryArrowStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	IndicatorOnStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	IndicatorOffStyle = lipgloss.NewStyle().Foreground(ColorSurface)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ModalButtonDangerStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorError).
		Foreground(ColorBackground).
		Bold(true)
	MenuItemStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(2)
	MenuItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingLeft(0)
	MenuItemDangerStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess).Foreground(ColorForeground)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning).Foreground(ColorForeground)
	ToastErrorStyle = toastBase.BorderForeground(ColorError).Foreground(ColorForeground)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ColorPool = []color.Color{
		ColorPrimary,
		ColorSecondary,
		ColorSuccess,
		ColorWarning,
		ColorError,
		ColorMuted,
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) color.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// TagStyle renders a style tag chip in a color stable for its text.
func TagStyle(tag string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorForString(tag))
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
