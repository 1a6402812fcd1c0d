// Package config provides YAML-based scenario loading for the rover simulator.
package config

import (
	"fmt"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

// Scenario describes one simulation: the planet, where the rover lands, and
// what it is told to do.
type Scenario struct {
	Name      string      `yaml:"name"`
	Grid      GridConfig  `yaml:"grid"`
	Rover     RoverConfig `yaml:"rover"`
	Obstacles []Point     `yaml:"obstacles"`
	Commands  string      `yaml:"commands"`
}

// GridConfig defines the planet surface size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoverConfig defines the landing pose.
type RoverConfig struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Facing string `yaml:"facing"` // north, east, south, west (or n/e/s/w)
}

// Point is a single obstacle cell.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// BuildGrid creates the grid described by the scenario.
func (s Scenario) BuildGrid() (rover.Grid, error) {
	rocks := make([]rover.Coord, len(s.Obstacles))
	for i, p := range s.Obstacles {
		rocks[i] = rover.C(p.X, p.Y)
	}
	return rover.NewGrid(s.Grid.Width, s.Grid.Height, rocks)
}

// Pose returns the landing pose. An empty facing means north.
func (s Scenario) Pose() (rover.Pose, error) {
	facing := rover.North
	if s.Rover.Facing != "" {
		o, ok := rover.ParseOrientation(s.Rover.Facing)
		if !ok {
			return rover.Pose{}, fmt.Errorf("config: unknown facing %q", s.Rover.Facing)
		}
		facing = o
	}
	return rover.NewPose(s.Rover.X, s.Rover.Y, facing), nil
}

// Vehicle lands the rover on the scenario grid.
// Errors from rover.NewVehicle are wrapped, so errors.Is still matches
// rover.ErrOutOfBounds and rover.ErrInitialCollision.
func (s Scenario) Vehicle() (rover.Vehicle, error) {
	g, err := s.BuildGrid()
	if err != nil {
		return rover.Vehicle{}, fmt.Errorf("config: scenario %q: %w", s.Name, err)
	}
	p, err := s.Pose()
	if err != nil {
		return rover.Vehicle{}, err
	}
	v, err := rover.NewVehicle(p, g)
	if err != nil {
		return rover.Vehicle{}, fmt.Errorf("config: scenario %q: %w", s.Name, err)
	}
	return v, nil
}

// Validate reports whether the scenario can land a rover.
func (s Scenario) Validate() error {
	_, err := s.Vehicle()
	return err
}
