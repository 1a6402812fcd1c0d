package config

import (
	_ "embed"
)

//go:embed defaults/default.yaml
var defaultScenarioYAML []byte

// DefaultScenario returns the built-in scenario: a 10x10 planet with one
// rock at (1,1) and a rover at the origin facing north.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "default",
		Grid: GridConfig{
			Width:  10,
			Height: 10,
		},
		Rover: RoverConfig{
			X:      0,
			Y:      0,
			Facing: "north",
		},
		Obstacles: []Point{
			{X: 1, Y: 1},
		},
		Commands: "frfffffff",
	}
}

// DefaultYAML returns the embedded default scenario file.
func DefaultYAML() []byte {
	return defaultScenarioYAML
}
