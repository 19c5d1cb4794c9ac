package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crossy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGrass:       lipgloss.NewStyle().Foreground(lipgloss.Color("113")),
	core.ColorGrassEdge:   lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorRoad:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorRoadMarking: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorTreeTop:     lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorTrunk:       lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorBeak:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorComb:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorCarRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	core.ColorCarBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("68")),
	core.ColorCarYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorCarPurple:   lipgloss.NewStyle().Foreground(lipgloss.Color("134")),
	core.ColorCoin:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorShield:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
