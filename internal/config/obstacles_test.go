package config

import (
	"testing"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

func TestParseObstacles(t *testing.T) {
	testCases := []struct {
		input    string
		expected []rover.Coord
	}{
		{"", nil},
		{"   ", nil},
		{"1,1", []rover.Coord{rover.C(1, 1)}},
		{"(3,4)", []rover.Coord{rover.C(3, 4)}},
		{"1,1 3,4", []rover.Coord{rover.C(1, 1), rover.C(3, 4)}},
		{"1,1; (3, 4);7,0;", []rover.Coord{rover.C(1, 1), rover.C(3, 4), rover.C(7, 0)}},
		{"(0,0)(2,2)", []rover.Coord{rover.C(0, 0), rover.C(2, 2)}},
	}

	for _, tc := range testCases {
		got, err := ParseObstacles(tc.input)
		if err != nil {
			t.Errorf("ParseObstacles(%q): unexpected error %v", tc.input, err)
			continue
		}
		if len(got) != len(tc.expected) {
			t.Errorf("ParseObstacles(%q): expected %v, got %v", tc.input, tc.expected, got)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("ParseObstacles(%q)[%d]: expected %v, got %v", tc.input, i, tc.expected[i], got[i])
			}
		}
	}
}

func TestParseObstaclesInvalid(t *testing.T) {
	inputs := []string{
		"1",
		"1,",
		"-1,2",
		"(1,2",
		"1,2,3",
		"a,b",
	}

	for _, in := range inputs {
		if got, err := ParseObstacles(in); err == nil {
			t.Errorf("ParseObstacles(%q): expected error, got %v", in, got)
		}
	}
}
