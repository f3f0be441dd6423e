package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Tagline string // Optional tagline
	Config  string // Optional config path in use
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 40

// RenderHeader renders the title block shown above the demo and scripts.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(DefaultAccent)).
		Bold(true)

	versionStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	taglineStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	dividerStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var output strings.Builder

	output.WriteString(titleStyle.Render("statable"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	if info.Config != "" {
		configStyle := lipgloss.NewStyle().Foreground(ColorMuted)
		output.WriteString(configStyle.Render("config: " + info.Config))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
