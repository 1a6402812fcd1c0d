package rover

import "fmt"

// Pose is a position on the grid together with a heading.
type Pose struct {
	X           int
	Y           int
	Orientation Orientation
}

// NewPose creates a pose at (x, y) facing o.
func NewPose(x, y int, o Orientation) Pose {
	return Pose{X: x, Y: y, Orientation: o}
}

// Coord returns the cell the pose occupies.
func (p Pose) Coord() Coord {
	return C(p.X, p.Y)
}

// String returns a string representation of the pose.
func (p Pose) String() string {
	return fmt.Sprintf("(%d,%d) %s", p.X, p.Y, p.Orientation)
}

// MoveForward returns the pose one cell ahead of p.
// limitX and limitY are the last valid indices of each axis (width-1,
// height-1); stepping past a limit wraps to 0 and stepping below 0 wraps to
// the limit.
func (p Pose) MoveForward(limitX, limitY int) Pose {
	switch p.Orientation {
	case North:
		p.Y = increment(p.Y, limitY)
	case South:
		p.Y = decrement(p.Y, limitY)
	case East:
		p.X = increment(p.X, limitX)
	case West:
		p.X = decrement(p.X, limitX)
	}
	return p
}

// MoveBackward returns the pose one cell behind p. It is the inverse of
// MoveForward for the same limits.
func (p Pose) MoveBackward(limitX, limitY int) Pose {
	switch p.Orientation {
	case North:
		p.Y = decrement(p.Y, limitY)
	case South:
		p.Y = increment(p.Y, limitY)
	case East:
		p.X = decrement(p.X, limitX)
	case West:
		p.X = increment(p.X, limitX)
	}
	return p
}

// PivotLeft returns p turned a quarter counter-clockwise in place.
func (p Pose) PivotLeft() Pose {
	p.Orientation = p.Orientation.PivotLeft()
	return p
}

// PivotRight returns p turned a quarter clockwise in place.
func (p Pose) PivotRight() Pose {
	p.Orientation = p.Orientation.PivotRight()
	return p
}

func increment(v, limit int) int {
	return (v + 1) % (limit + 1)
}

func decrement(v, limit int) int {
	if v > 0 {
		return v - 1
	}
	return limit
}
