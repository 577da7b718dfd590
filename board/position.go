package board

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Position is an axial hex coordinate.
type Position struct {
	Q int
	R int
}

var directions = [6]Position{
	{Q: 1, R: 0}, {Q: -1, R: 0},
	{Q: 0, R: 1}, {Q: 0, R: -1},
	{Q: 1, R: -1}, {Q: -1, R: 1},
}

func (p Position) Add(other Position) Position {
	return Position{Q: p.Q + other.Q, R: p.R + other.R}
}

// Adjacent reports whether both hexes share an edge.
func (p Position) Adjacent(other Position) bool {
	for _, d := range directions {
		if p.Add(d) == other {
			return true
		}
	}
	return false
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Q, p.R)
}

// UnmarshalYAML reads a position written as a two element sequence [q, r].
func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: position needs exactly two coordinates, got %d", node.Line, len(pair))
	}
	p.Q, p.R = pair[0], pair[1]
	return nil
}
