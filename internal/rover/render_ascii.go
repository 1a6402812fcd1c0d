package rover

import "strings"

// Map characters.
const (
	RoverChar = 'R'
	RockChar  = 'X'
	EmptyChar = '.'
)

// RenderASCII draws the vehicle's grid with north at the top.
// The rover is 'R', rocks are 'X' and free cells are '.'; every row ends
// with a newline.
func RenderASCII(v Vehicle) string {
	g := v.Grid()
	p := v.Pose()

	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			sb.WriteRune(RenderCell(g, p, x, y))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCell returns the map character for (x, y).
func RenderCell(g Grid, p Pose, x, y int) rune {
	if p.X == x && p.Y == y {
		return RoverChar
	}
	if g.HasObstacleAt(x, y) {
		return RockChar
	}
	return EmptyChar
}
