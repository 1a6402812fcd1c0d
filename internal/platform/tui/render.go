package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

// cellStyles maps map characters to lipgloss styles.
var cellStyles = map[rune]lipgloss.Style{
	rover.RoverChar: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	rover.RockChar:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	rover.EmptyChar: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderMap draws the grid with north at the top, colouring the rover,
// rocks and free cells. Rows are separated by newlines, without a trailing
// one.
// Groups adjacent cells with the same character to minimize ANSI escape sequences.
func RenderMap(g rover.Grid, p rover.Pose) string {
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	for y := g.Height() - 1; y >= 0; y-- {
		if y < g.Height()-1 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < g.Width() {
			start := rover.RenderCell(g, p, x, y)

			var run strings.Builder
			for x < g.Width() {
				ch := rover.RenderCell(g, p, x, y)
				if ch != start {
					break
				}
				run.WriteRune(ch)
				x++
			}

			style, ok := cellStyles[start]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
