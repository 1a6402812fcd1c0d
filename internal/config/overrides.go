package config

// Overrides replaces scenario fields with values given on the command line.
// Nil fields leave the scenario untouched.
type Overrides struct {
	Commands *string
	X        *int
	Y        *int
	Facing   *string
	Width    *int
	Height   *int
	Rocks    *string // obstacle list syntax, see ParseObstacles
}

// Apply modifies s in place. It fails only if Rocks does not parse.
func (o Overrides) Apply(s *Scenario) error {
	if o.Commands != nil {
		s.Commands = *o.Commands
	}
	if o.X != nil {
		s.Rover.X = *o.X
	}
	if o.Y != nil {
		s.Rover.Y = *o.Y
	}
	if o.Facing != nil {
		s.Rover.Facing = *o.Facing
	}
	if o.Width != nil {
		s.Grid.Width = *o.Width
	}
	if o.Height != nil {
		s.Grid.Height = *o.Height
	}
	if o.Rocks != nil {
		rocks, err := ParseObstacles(*o.Rocks)
		if err != nil {
			return err
		}
		s.Obstacles = make([]Point, len(rocks))
		for i, r := range rocks {
			s.Obstacles[i] = Point{X: r.X, Y: r.Y}
		}
	}
	return nil
}
