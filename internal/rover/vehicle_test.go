package rover_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

func mustGrid(t *testing.T, w, h int, rocks ...rover.Coord) rover.Grid {
	t.Helper()
	g, err := rover.NewGrid(w, h, rocks)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func mustVehicle(t *testing.T, p rover.Pose, g rover.Grid) rover.Vehicle {
	t.Helper()
	v, err := rover.NewVehicle(p, g)
	if err != nil {
		t.Fatalf("NewVehicle(%v): %v", p, err)
	}
	return v
}

func TestNewVehicle(t *testing.T) {
	open := mustGrid(t, 10, 10)
	rocky := mustGrid(t, 10, 10, rover.C(5, 5))

	testCases := []struct {
		name     string
		pose     rover.Pose
		grid     rover.Grid
		expected error
	}{
		{"x too large", rover.NewPose(20, 0, rover.North), open, rover.ErrOutOfBounds},
		{"y too large", rover.NewPose(0, 20, rover.North), open, rover.ErrOutOfBounds},
		{"x equals width", rover.NewPose(10, 0, rover.North), open, rover.ErrOutOfBounds},
		{"y equals height", rover.NewPose(0, 10, rover.North), open, rover.ErrOutOfBounds},
		{"negative x", rover.NewPose(-1, 0, rover.North), open, rover.ErrOutOfBounds},
		{"on a rock", rover.NewPose(5, 5, rover.North), rocky, rover.ErrInitialCollision},
		{"free cell", rover.NewPose(5, 5, rover.North), open, nil},
		{"last cell", rover.NewPose(9, 9, rover.West), rocky, nil},
	}

	for _, tc := range testCases {
		v, err := rover.NewVehicle(tc.pose, tc.grid)
		if tc.expected == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
				continue
			}
			if v.Pose() != tc.pose {
				t.Errorf("%s: expected pose %v, got %v", tc.name, tc.pose, v.Pose())
			}
			continue
		}
		if !errors.Is(err, tc.expected) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, err)
		}
	}
}

func TestVehicleApply(t *testing.T) {
	testCases := []struct {
		facing   rover.Orientation
		command  rover.Command
		expected rover.Pose
	}{
		{rover.North, rover.MoveBackward, rover.NewPose(5, 4, rover.North)},
		{rover.North, rover.MoveForward, rover.NewPose(5, 6, rover.North)},
		{rover.North, rover.PivotLeft, rover.NewPose(5, 5, rover.West)},
		{rover.North, rover.PivotRight, rover.NewPose(5, 5, rover.East)},
		{rover.West, rover.MoveBackward, rover.NewPose(6, 5, rover.West)},
		{rover.West, rover.MoveForward, rover.NewPose(4, 5, rover.West)},
		{rover.West, rover.PivotLeft, rover.NewPose(5, 5, rover.South)},
		{rover.West, rover.PivotRight, rover.NewPose(5, 5, rover.North)},
		{rover.South, rover.MoveBackward, rover.NewPose(5, 6, rover.South)},
		{rover.South, rover.MoveForward, rover.NewPose(5, 4, rover.South)},
		{rover.South, rover.PivotLeft, rover.NewPose(5, 5, rover.East)},
		{rover.South, rover.PivotRight, rover.NewPose(5, 5, rover.West)},
		{rover.East, rover.MoveBackward, rover.NewPose(4, 5, rover.East)},
		{rover.East, rover.MoveForward, rover.NewPose(6, 5, rover.East)},
		{rover.East, rover.PivotLeft, rover.NewPose(5, 5, rover.North)},
		{rover.East, rover.PivotRight, rover.NewPose(5, 5, rover.South)},
	}

	g := mustGrid(t, 10, 10)
	for _, tc := range testCases {
		v := mustVehicle(t, rover.NewPose(5, 5, tc.facing), g)
		got := v.Apply(tc.command).Pose()
		if got != tc.expected {
			t.Errorf("%v %v: expected %v, got %v", tc.facing, tc.command, tc.expected, got)
		}
		if v.Pose() != rover.NewPose(5, 5, tc.facing) {
			t.Errorf("%v %v: Apply modified the original vehicle", tc.facing, tc.command)
		}
	}
}

func TestVehicleApplyDoesNotCheckCollision(t *testing.T) {
	g := mustGrid(t, 5, 5, rover.C(2, 3))
	v := mustVehicle(t, rover.NewPose(2, 2, rover.North), g)

	moved := v.Apply(rover.MoveForward)
	if moved.Pose().Coord() != rover.C(2, 3) {
		t.Fatalf("expected Apply to move onto the rock, got %v", moved.Pose())
	}

	same, err := moved.CheckCollision()
	if !errors.Is(err, rover.ErrCollision) {
		t.Fatalf("expected collision, got %v", err)
	}
	var ce *rover.CollisionError
	if !errors.As(err, &ce) || ce.At != rover.C(2, 3) {
		t.Errorf("expected collision at (2,3), got %v", err)
	}
	if same.Pose() != moved.Pose() {
		t.Errorf("CheckCollision changed the vehicle: %v -> %v", moved.Pose(), same.Pose())
	}
}

func TestVehicleCheckCollision(t *testing.T) {
	g := mustGrid(t, 5, 5, rover.C(4, 4), rover.C(1, 3))
	v := mustVehicle(t, rover.NewPose(2, 2, rover.North), g)

	got, err := v.CheckCollision()
	if err != nil {
		t.Errorf("unexpected collision: %v", err)
	}
	if got.Pose() != v.Pose() {
		t.Errorf("expected unchanged pose %v, got %v", v.Pose(), got.Pose())
	}

	_, err = rover.NewVehicle(rover.NewPose(1, 3, rover.South), g)
	if !errors.Is(err, rover.ErrInitialCollision) {
		t.Errorf("expected ErrInitialCollision, got %v", err)
	}
}

func TestVehicleSharesGrid(t *testing.T) {
	g := mustGrid(t, 3, 3, rover.C(0, 2))
	v := mustVehicle(t, rover.NewPose(0, 0, rover.East), g)

	next := v.Apply(rover.MoveForward)
	if next.Grid().Width() != 3 || !next.Grid().HasObstacleAt(0, 2) {
		t.Errorf("Apply lost the grid: %dx%d", next.Grid().Width(), next.Grid().Height())
	}
}
