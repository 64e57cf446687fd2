package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Tiles are drawn bold so
// the values stand out from the grid lines.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
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
