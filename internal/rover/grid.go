package rover

import (
	"fmt"
	"sort"
)

// Grid is the surface the rover drives on: a width x height rectangle whose
// edges wrap around, plus a set of rocks. A Grid is immutable once built and
// may be shared freely between vehicles.
type Grid struct {
	width  int
	height int
	rocks  map[Coord]struct{}
}

// NewGrid creates a grid with the given dimensions and rocks.
// Rocks are not validated: duplicates collapse, and rocks outside the
// bounds are kept but can never be reached.
func NewGrid(width, height int, rocks []Coord) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	g := Grid{
		width:  width,
		height: height,
		rocks:  make(map[Coord]struct{}, len(rocks)),
	}
	for _, r := range rocks {
		g.rocks[r] = struct{}{}
	}
	return g, nil
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// InBounds returns true if (x, y) is a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// HasObstacleAt returns true if a rock occupies (x, y).
func (g Grid) HasObstacleAt(x, y int) bool {
	_, ok := g.rocks[C(x, y)]
	return ok
}

// Obstacles returns the rocks ordered by row then column.
// The slice is a copy; changing it does not affect the grid.
func (g Grid) Obstacles() []Coord {
	out := make([]Coord, 0, len(g.rocks))
	for c := range g.rocks {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
