package rover_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

func TestNewGridSize(t *testing.T) {
	testCases := []struct {
		w, h int
		ok   bool
	}{
		{1, 1, true},
		{10, 3, true},
		{0, 5, false},
		{5, 0, false},
		{-2, 4, false},
	}

	for _, tc := range testCases {
		_, err := rover.NewGrid(tc.w, tc.h, nil)
		if tc.ok && err != nil {
			t.Errorf("NewGrid(%d, %d): unexpected error %v", tc.w, tc.h, err)
		}
		if !tc.ok && !errors.Is(err, rover.ErrInvalidSize) {
			t.Errorf("NewGrid(%d, %d): expected ErrInvalidSize, got %v", tc.w, tc.h, err)
		}
	}
}

func TestGridObstacles(t *testing.T) {
	rocks := []rover.Coord{rover.C(3, 1), rover.C(1, 1), rover.C(3, 1), rover.C(0, 2), rover.C(42, 42)}
	g := mustGrid(t, 5, 5, rocks...)

	testCases := []struct {
		coord    rover.Coord
		expected bool
	}{
		{rover.C(1, 1), true},
		{rover.C(3, 1), true},
		{rover.C(0, 2), true},
		{rover.C(42, 42), true},
		{rover.C(0, 0), false},
		{rover.C(1, 3), false},
	}
	for _, tc := range testCases {
		if got := g.HasObstacleAt(tc.coord.X, tc.coord.Y); got != tc.expected {
			t.Errorf("HasObstacleAt%v: expected %v, got %v", tc.coord, tc.expected, got)
		}
	}

	expected := []rover.Coord{rover.C(1, 1), rover.C(3, 1), rover.C(0, 2), rover.C(42, 42)}
	got := g.Obstacles()
	if len(got) != len(expected) {
		t.Fatalf("Obstacles: expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Obstacles[%d]: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestGridIsImmutable(t *testing.T) {
	rocks := []rover.Coord{rover.C(1, 1)}
	g := mustGrid(t, 3, 3, rocks...)

	rocks[0] = rover.C(2, 2)
	out := g.Obstacles()
	out[0] = rover.C(0, 0)

	if !g.HasObstacleAt(1, 1) || g.HasObstacleAt(2, 2) || g.HasObstacleAt(0, 0) {
		t.Errorf("grid changed through caller slices: %v", g.Obstacles())
	}
}

func TestGridInBounds(t *testing.T) {
	g := mustGrid(t, 4, 2)

	testCases := []struct {
		coord    rover.Coord
		expected bool
	}{
		{rover.C(0, 0), true},
		{rover.C(3, 1), true},
		{rover.C(4, 0), false},
		{rover.C(0, 2), false},
		{rover.C(-1, 0), false},
	}
	for _, tc := range testCases {
		if got := g.InBounds(tc.coord.X, tc.coord.Y); got != tc.expected {
			t.Errorf("InBounds%v: expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}
