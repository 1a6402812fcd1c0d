package rover

// Reporter receives diagnostics from a Sequencer run.
// Implementations decide how, or whether, to surface them.
type Reporter interface {
	// ReportCollision is called once when a run halts. last is the vehicle
	// the run returns, i.e. the state before the offending command.
	ReportCollision(err *CollisionError, last Vehicle)

	// ReportSkipped is called for every character that is not a command.
	ReportSkipped(index int, r rune)
}

// Step is one accepted command of a run and the pose it produced.
type Step struct {
	Index   int // byte offset in the command string
	Command Command
	Pose    Pose
}

// Result is the outcome of Sequencer.Execute.
type Result struct {
	Start     Vehicle
	Vehicle   Vehicle // last collision-free vehicle
	Steps     []Step
	Skipped   int
	Collision *CollisionError // nil if the run completed
}

// Halted returns true if the run stopped on a collision.
func (r Result) Halted() bool {
	return r.Collision != nil
}

// Sequencer folds a command string over a vehicle, stopping at the first
// collision.
type Sequencer struct {
	reporter Reporter
}

// NewSequencer creates a sequencer that sends diagnostics to r.
// r may be nil.
func NewSequencer(r Reporter) *Sequencer {
	return &Sequencer{reporter: r}
}

// Run executes commands and returns the final collision-free vehicle.
func (s *Sequencer) Run(v Vehicle, commands string) Vehicle {
	return s.Execute(v, commands).Vehicle
}

// Execute runs commands left to right. Unknown characters are skipped.
// On the first command that lands on a rock the run stops, the collision
// is reported, and the vehicle from before that command is returned;
// remaining characters are not looked at.
func (s *Sequencer) Execute(v Vehicle, commands string) Result {
	res := Result{Start: v, Vehicle: v}

	for i, ch := range commands {
		cmd, ok := ParseCommand(ch)
		if !ok {
			res.Skipped++
			if s.reporter != nil {
				s.reporter.ReportSkipped(i, ch)
			}
			continue
		}

		next, err := res.Vehicle.Apply(cmd).CheckCollision()
		if err != nil {
			collision := &CollisionError{At: next.Pose().Coord(), Command: cmd, Index: i}
			res.Collision = collision
			if s.reporter != nil {
				s.reporter.ReportCollision(collision, res.Vehicle)
			}
			return res
		}

		res.Vehicle = next
		res.Steps = append(res.Steps, Step{Index: i, Command: cmd, Pose: next.Pose()})
	}

	return res
}

// Run executes commands on v without reporting diagnostics.
func Run(v Vehicle, commands string) Vehicle {
	return NewSequencer(nil).Run(v, commands)
}
