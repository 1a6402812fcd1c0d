package rover

// Command is a single action the rover understands.
type Command uint8

const (
	MoveForward Command = iota
	MoveBackward
	PivotLeft
	PivotRight
)

// ParseCommand maps a command character to a Command.
// Unknown characters report false and are meant to be skipped, not rejected.
func ParseCommand(r rune) (Command, bool) {
	switch r {
	case 'f':
		return MoveForward, true
	case 'b':
		return MoveBackward, true
	case 'l':
		return PivotLeft, true
	case 'r':
		return PivotRight, true
	default:
		return MoveForward, false
	}
}

// Rune returns the character that parses to c.
func (c Command) Rune() rune {
	switch c {
	case MoveForward:
		return 'f'
	case MoveBackward:
		return 'b'
	case PivotLeft:
		return 'l'
	case PivotRight:
		return 'r'
	default:
		return '?'
	}
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case MoveForward:
		return "MoveForward"
	case MoveBackward:
		return "MoveBackward"
	case PivotLeft:
		return "PivotLeft"
	case PivotRight:
		return "PivotRight"
	default:
		return "Unknown"
	}
}
