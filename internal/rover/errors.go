package rover

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid has a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrOutOfBounds is returned when a vehicle starts outside its grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInitialCollision is returned when a vehicle starts on a rock.
	ErrInitialCollision = errors.New("rover crashes directly on a rock")

	// ErrCollision matches every *CollisionError.
	ErrCollision = errors.New("collision with rock")
)

// CollisionError reports a pose that landed on a rock.
// Index and Command are only set when the collision came out of a sequencer
// run; Index is the byte offset of the command in the command string.
type CollisionError struct {
	At      Coord
	Command Command
	Index   int
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("collision with rock at %s", e.At)
}

// Is makes errors.Is(err, ErrCollision) true for any collision.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}
