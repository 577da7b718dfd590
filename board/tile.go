package board

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Tile int

const (
	Woods Tile = iota
	Tundra
	Mountain
	Farm
	Village
	Lake
	Factory
	Home
)

var tileNames = [...]string{"woods", "tundra", "mountain", "farm", "village", "lake", "factory", "home"}

func (t Tile) String() string {
	if t < 0 || int(t) >= len(tileNames) {
		return fmt.Sprintf("tile(%d)", int(t))
	}
	return tileNames[t]
}

// Producible reports whether workers can produce on the tile.
func (t Tile) Producible() bool {
	switch t {
	case Woods, Tundra, Mountain, Farm, Village:
		return true
	}
	return false
}

// Resource returns the resource a tile yields. Villages yield workers and
// therefore report false.
func (t Tile) Resource() (Resource, bool) {
	switch t {
	case Woods:
		return Wood, true
	case Tundra:
		return Oil, true
	case Mountain:
		return Metal, true
	case Farm:
		return Food, true
	}
	return 0, false
}

func ParseTile(name string) (Tile, error) {
	for i, n := range tileNames {
		if strings.EqualFold(n, name) {
			return Tile(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile %q", name)
}

func (t *Tile) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	tile, err := ParseTile(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = tile
	return nil
}
