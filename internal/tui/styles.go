package tui

import (
	"github.com/charmbracelet/lipgloss"

	"regionmap/internal/region"
)

// Palette follows the map's own default and hover colors so the chrome
// matches what is drawn.
var (
	textFg   = lipgloss.AdaptiveColor{Light: "#1F2933", Dark: "#D8D8D8"}
	mutedFg  = lipgloss.AdaptiveColor{Light: "#7B8794", Dark: "#8A8A8A"}
	regionFg = lipgloss.Color("#25669E")
	frameFg  = lipgloss.AdaptiveColor{Light: "#BCCCDC", Dark: "#3E4C59"}
	// outlines stroked in white vanish on light terminals
	edgeFg = lipgloss.AdaptiveColor{Light: "#52606D", Dark: "#FFFFFF"}

	appStyle   = lipgloss.NewStyle().Foreground(textFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(frameFg).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(regionFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedFg)
	hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(regionFg).Bold(true)
)

// outlineStyle colors a shape by its current fill, or by its stroke when it
// is not filled.
func outlineStyle(sh *shape) lipgloss.Style {
	if fill := sh.fill(); fill != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fill))
	}
	switch stroke := sh.attrs[region.AttrStroke]; stroke {
	case "", "none", "#fff", "#ffffff", "#FFFFFF", "white":
		return lipgloss.NewStyle().Foreground(edgeFg)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(stroke))
	}
}
