package render

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// styles is the set of text styles one Renderer applies. The zero value
// renders everything unstyled.
type styles struct {
	dir    lipgloss.Style
	file   lipgloss.Style
	branch lipgloss.Style
	meta   lipgloss.Style
}

func coloredStyles() styles {
	return styles{
		dir:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		file:   lipgloss.NewStyle(),
		branch: lipgloss.NewStyle().Foreground(colorMuted),
		meta:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func plainStyles() styles {
	return styles{}
}
