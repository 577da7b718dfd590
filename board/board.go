package board

import (
	"encoding/binary"
	"fmt"
	"hash"
)

type FieldID int

// NoField marks a unit that is not on the board.
const NoField FieldID = -1

type FieldTemplate struct {
	Position   Position  `yaml:"pos"`
	Tile       Tile      `yaml:"tile"`
	Tunnelable bool      `yaml:"tunnel"`
	Encounter  bool      `yaml:"encounter"`
	Resources  Resources `yaml:"resources"`
}

type HomeTemplate struct {
	Position Position    `yaml:"pos"`
	Start    [2]Position `yaml:"start"`
}

type Template struct {
	Fields []FieldTemplate `yaml:"fields"`
	Rivers [][2]Position   `yaml:"rivers"`
	Homes  []HomeTemplate  `yaml:"homes"`
}

type Field struct {
	ID         FieldID
	Position   Position
	Tile       Tile
	Tunnelable bool
	Encounter  bool
	Resources  Resources
}

// Base is a faction home together with the two fields its first workers
// start on.
type Base struct {
	Field FieldID
	Start [2]FieldID
}

type edge struct {
	a, b FieldID
}

func newEdge(a, b FieldID) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a: a, b: b}
}

// Board is an arena of fields addressed by FieldID. Only the resource
// inventories change during a game; topology is shared between copies.
type Board struct {
	fields    []Field
	index     map[Position]FieldID
	neighbors [][]FieldID
	rivers    map[edge]struct{}
	homes     []Base
}

// New builds a board from a template. A position defined twice is a
// configuration error and panics.
func New(t Template) *Board {
	b := &Board{
		index:  make(map[Position]FieldID, len(t.Fields)+len(t.Homes)),
		rivers: make(map[edge]struct{}, len(t.Rivers)),
	}

	add := func(f Field) FieldID {
		if _, ok := b.index[f.Position]; ok {
			panic(fmt.Sprintf("board field %s is defined twice", f.Position))
		}
		f.ID = FieldID(len(b.fields))
		b.fields = append(b.fields, f)
		b.index[f.Position] = f.ID
		return f.ID
	}

	for _, ft := range t.Fields {
		add(Field{
			Position:   ft.Position,
			Tile:       ft.Tile,
			Tunnelable: ft.Tunnelable,
			Encounter:  ft.Encounter,
			Resources:  ft.Resources,
		})
	}
	homeIDs := make([]FieldID, len(t.Homes))
	for i, ht := range t.Homes {
		homeIDs[i] = add(Field{Position: ht.Position, Tile: Home})
	}
	for i, ht := range t.Homes {
		home := Base{Field: homeIDs[i]}
		for j, pos := range ht.Start {
			id, ok := b.index[pos]
			if !ok {
				panic(fmt.Sprintf("starting field %s of home %s is not on the board", pos, ht.Position))
			}
			home.Start[j] = id
		}
		b.homes = append(b.homes, home)
	}

	b.neighbors = make([][]FieldID, len(b.fields))
	for i, f := range b.fields {
		for _, d := range directions {
			if id, ok := b.index[f.Position.Add(d)]; ok {
				b.neighbors[i] = append(b.neighbors[i], id)
			}
		}
	}

	for _, river := range t.Rivers {
		a, okA := b.index[river[0]]
		c, okC := b.index[river[1]]
		if okA && okC {
			b.rivers[newEdge(a, c)] = struct{}{}
		}
	}
	return b
}

func (b *Board) Len() int {
	return len(b.fields)
}

// GetField resolves a position to its field.
func (b *Board) GetField(pos Position) (FieldID, bool) {
	id, ok := b.index[pos]
	return id, ok
}

func (b *Board) Field(id FieldID) *Field {
	return &b.fields[id]
}

// IsRiver reports whether a river separates both fields. The relation is
// symmetric.
func (b *Board) IsRiver(a, c FieldID) bool {
	_, ok := b.rivers[newEdge(a, c)]
	return ok
}

func (b *Board) IsAdjacent(a, c FieldID) bool {
	for _, n := range b.neighbors[a] {
		if n == c {
			return true
		}
	}
	return false
}

func (b *Board) Neighbors(id FieldID) []FieldID {
	return b.neighbors[id]
}

func (b *Board) Tunnels() []FieldID {
	var tunnels []FieldID
	for _, f := range b.fields {
		if f.Tunnelable {
			tunnels = append(tunnels, f.ID)
		}
	}
	return tunnels
}

func (b *Board) Homes() []Base {
	return b.homes
}

// TotalResources sums the inventories of every field.
func (b *Board) TotalResources() Resources {
	var total Resources
	for _, f := range b.fields {
		total = total.Add(f.Resources)
	}
	return total
}

// Copy returns a board with its own resource inventories.
func (b *Board) Copy() *Board {
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	return &Board{
		fields:    fields,
		index:     b.index,
		neighbors: b.neighbors,
		rivers:    b.rivers,
		homes:     b.homes,
	}
}

// WriteHash feeds the mutable board state into h.
func (b *Board) WriteHash(h hash.Hash64) {
	for _, f := range b.fields {
		binary.Write(h, binary.LittleEndian, [4]int32{
			int32(f.Resources.Wood), int32(f.Resources.Metal), int32(f.Resources.Oil), int32(f.Resources.Food),
		})
	}
}
