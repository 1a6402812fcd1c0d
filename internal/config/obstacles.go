package config

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

// obstacleList is the grammar for obstacle lists given on the command line:
//
//	1,1 (3,4); 7,0
//
// Pairs may be parenthesised and separated by whitespace or ';'.
type obstacleList struct {
	Pairs []*obstacleSpec `parser:"( @@ ( ';'? @@ )* ';'? )?"`
}

type obstacleSpec struct {
	Paren *obstaclePair `parser:"  '(' @@ ')'"`
	Bare  *obstaclePair `parser:"| @@"`
}

type obstaclePair struct {
	X int `parser:"@Int ','"`
	Y int `parser:"@Int"`
}

func (s *obstacleSpec) pair() *obstaclePair {
	if s.Paren != nil {
		return s.Paren
	}
	return s.Bare
}

var obstacleParser = participle.MustBuild[obstacleList]()

// ParseObstacles parses an obstacle list such as "1,1; (3,4)".
// An empty string yields no obstacles.
func ParseObstacles(s string) ([]rover.Coord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	list, err := obstacleParser.ParseString("rocks", s)
	if err != nil {
		return nil, fmt.Errorf("config: invalid obstacle list %q: %w", s, err)
	}

	coords := make([]rover.Coord, 0, len(list.Pairs))
	for _, spec := range list.Pairs {
		p := spec.pair()
		coords = append(coords, rover.C(p.X, p.Y))
	}
	return coords, nil
}
