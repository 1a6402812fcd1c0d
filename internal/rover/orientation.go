// Package rover provides the pose and collision logic for a rover driving on a
// wrap-around grid. It has no external dependencies and never mutates a value in
// place: every transition returns a new value.
package rover

import "strings"

// Orientation is the compass direction the rover is facing.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// PivotLeft returns the orientation after a quarter turn counter-clockwise.
func (o Orientation) PivotLeft() Orientation {
	switch o {
	case North:
		return West
	case East:
		return North
	case South:
		return East
	case West:
		return South
	default:
		return o
	}
}

// PivotRight returns the orientation after a quarter turn clockwise.
func (o Orientation) PivotRight() Orientation {
	switch o {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return o
	}
}

// ParseOrientation parses a compass name ("north", "N", "East", ...).
// Matching is case-insensitive.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "east", "e":
		return East, true
	case "south", "s":
		return South, true
	case "west", "w":
		return West, true
	default:
		return North, false
	}
}
