package rover

import "fmt"

// Vehicle is a rover pose bound to the grid it drives on.
// The zero value is not usable; build one with NewVehicle.
type Vehicle struct {
	pose Pose
	grid Grid
}

// NewVehicle places a rover on the grid.
// It fails with ErrOutOfBounds if the pose is outside the grid and with
// ErrInitialCollision if the pose is on a rock.
func NewVehicle(pose Pose, grid Grid) (Vehicle, error) {
	if !grid.InBounds(pose.X, pose.Y) {
		return Vehicle{}, fmt.Errorf("%w: %s on %dx%d grid",
			ErrOutOfBounds, pose.Coord(), grid.Width(), grid.Height())
	}
	if grid.HasObstacleAt(pose.X, pose.Y) {
		return Vehicle{}, fmt.Errorf("%w at %s", ErrInitialCollision, pose.Coord())
	}
	return Vehicle{pose: pose, grid: grid}, nil
}

// Pose returns the current pose.
func (v Vehicle) Pose() Pose {
	return v.pose
}

// Grid returns the grid the vehicle drives on.
func (v Vehicle) Grid() Grid {
	return v.grid
}

// CheckCollision returns v unchanged together with a *CollisionError when
// the current pose sits on a rock. The vehicle is returned in both cases so
// callers can keep it without re-deriving it.
func (v Vehicle) CheckCollision() (Vehicle, error) {
	if v.grid.HasObstacleAt(v.pose.X, v.pose.Y) {
		return v, &CollisionError{At: v.pose.Coord()}
	}
	return v, nil
}

// Apply returns the vehicle after executing cmd. It never checks for
// collisions; follow it with CheckCollision.
func (v Vehicle) Apply(cmd Command) Vehicle {
	limitX := v.grid.Width() - 1
	limitY := v.grid.Height() - 1

	next := v
	switch cmd {
	case MoveForward:
		next.pose = v.pose.MoveForward(limitX, limitY)
	case MoveBackward:
		next.pose = v.pose.MoveBackward(limitX, limitY)
	case PivotLeft:
		next.pose = v.pose.PivotLeft()
	case PivotRight:
		next.pose = v.pose.PivotRight()
	}
	return next
}
