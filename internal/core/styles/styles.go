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

	// Main guide view.
	TitleBarStyle     lipgloss.Style
	StatusBarStyle    lipgloss.Style
	CategoryStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
	ListNormalStyle   lipgloss.Style
	ListSummaryStyle  lipgloss.Style

	// Dialog styles.
	DialogStyle        lipgloss.Style
	DialogTitleStyle   lipgloss.Style
	DialogHelpStyle    lipgloss.Style
	DialogDismissStyle lipgloss.Style
	DialogBusyStyle    lipgloss.Style

	// Packing checklist.
	PackedStyle   lipgloss.Style
	UnpackedStyle lipgloss.Style

	// Weather outlook.
	WeatherHighStyle lipgloss.Style
	WeatherLowStyle  lipgloss.Style
)

// ColorPool is used for deterministic color hashing of activity categories.
var ColorPool []color.Color

// SetTheme sets the active palette and rebuilds all global styles.
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
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TitleBarStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CategoryStyle = lipgloss.NewStyle().
		Bold(true)
	ListSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ListNormalStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ListSummaryStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	DialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	DialogDismissStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DialogBusyStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	PackedStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	UnpackedStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)

	WeatherHighStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	WeatherLowStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

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

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
