package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication (ANSI codes for broad terminal support)
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Loader ring defaults. The ring blends from Background toward Accent, so
// these are hex values rather than ANSI indexes.
const (
	DefaultAccent     = "#FF3B30"
	DefaultBackground = "#000000"
	DefaultFade       = 0.15
)

// StateColor returns the status color used for a loader state label.
func StateColor(name string) lipgloss.Color {
	switch name {
	case "spinning":
		return ColorInfo
	case "paused":
		return ColorWarning
	default:
		return ColorMuted
	}
}

// DisableColors switches lipgloss to monochrome output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ForceColors enables true color even when stdout is not a terminal (for
// output.color: always).
func ForceColors() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// ColorsEnabled reports whether styled output will carry any color.
func ColorsEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
