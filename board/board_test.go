package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func smallTemplate() Template {
	return Template{
		Fields: []FieldTemplate{
			{Position: Position{Q: 1, R: 0}, Tile: Mountain, Resources: Resources{Metal: 2}},
			{Position: Position{Q: 0, R: 1}, Tile: Farm},
			{Position: Position{Q: 1, R: 1}, Tile: Woods, Tunnelable: true},
			{Position: Position{Q: 3, R: 3}, Tile: Lake, Tunnelable: true},
		},
		Rivers: [][2]Position{
			{{Q: 1, R: 0}, {Q: 1, R: 1}},
			{{Q: 9, R: 9}, {Q: 1, R: 1}},
		},
		Homes: []HomeTemplate{
			{Position: Position{Q: 0, R: 0}, Start: [2]Position{{Q: 1, R: 0}, {Q: 0, R: 1}}},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("builds fields and homes", func(t *testing.T) {
		b := New(smallTemplate())

		require.Equal(t, 5, b.Len())
		home, ok := b.GetField(Position{Q: 0, R: 0})
		require.True(t, ok)
		require.Equal(t, Home, b.Field(home).Tile)

		homes := b.Homes()
		require.Len(t, homes, 1)
		mountain, _ := b.GetField(Position{Q: 1, R: 0})
		farm, _ := b.GetField(Position{Q: 0, R: 1})
		require.Equal(t, Base{Field: home, Start: [2]FieldID{mountain, farm}}, homes[0])
	})

	t.Run("panics on a duplicate position", func(t *testing.T) {
		tmpl := smallTemplate()
		tmpl.Fields = append(tmpl.Fields, FieldTemplate{Position: Position{Q: 1, R: 0}, Tile: Farm})

		require.Panics(t, func() { New(tmpl) }, "Should panic when a field is defined twice")
	})

	t.Run("panics when a home overlaps a field", func(t *testing.T) {
		tmpl := smallTemplate()
		tmpl.Homes[0].Position = Position{Q: 1, R: 1}

		require.Panics(t, func() { New(tmpl) })
	})

	t.Run("panics on an unknown starting field", func(t *testing.T) {
		tmpl := smallTemplate()
		tmpl.Homes[0].Start[1] = Position{Q: 7, R: 7}

		require.Panics(t, func() { New(tmpl) })
	})
}

func TestGetField(t *testing.T) {
	b := New(smallTemplate())

	id, ok := b.GetField(Position{Q: 1, R: 0})
	require.True(t, ok)
	require.Equal(t, Position{Q: 1, R: 0}, b.Field(id).Position)
	require.Equal(t, Resources{Metal: 2}, b.Field(id).Resources)

	_, ok = b.GetField(Position{Q: 5, R: 5})
	require.False(t, ok, "Unknown positions should not resolve")
}

func TestIsRiver(t *testing.T) {
	b := New(smallTemplate())
	mountain, _ := b.GetField(Position{Q: 1, R: 0})
	woods, _ := b.GetField(Position{Q: 1, R: 1})
	farm, _ := b.GetField(Position{Q: 0, R: 1})

	require.True(t, b.IsRiver(mountain, woods))
	require.True(t, b.IsRiver(woods, mountain), "Rivers should be symmetric")
	require.False(t, b.IsRiver(mountain, farm))
	require.False(t, b.IsRiver(woods, farm))
}

func TestAdjacency(t *testing.T) {
	b := New(smallTemplate())
	home, _ := b.GetField(Position{Q: 0, R: 0})
	mountain, _ := b.GetField(Position{Q: 1, R: 0})
	farm, _ := b.GetField(Position{Q: 0, R: 1})
	woods, _ := b.GetField(Position{Q: 1, R: 1})
	lake, _ := b.GetField(Position{Q: 3, R: 3})

	require.ElementsMatch(t, []FieldID{home, farm, woods}, b.Neighbors(mountain))
	require.True(t, b.IsAdjacent(farm, mountain))
	require.False(t, b.IsAdjacent(home, woods))
	require.Empty(t, b.Neighbors(lake))
	require.Equal(t, []FieldID{woods, lake}, b.Tunnels())
}

func TestCopy(t *testing.T) {
	b := New(smallTemplate())
	mountain, _ := b.GetField(Position{Q: 1, R: 0})

	c := b.Copy()
	c.Field(mountain).Resources = Resources{Wood: 5}

	require.Equal(t, Resources{Metal: 2}, b.Field(mountain).Resources, "Copies should not share inventories")
	require.Equal(t, Resources{Wood: 5}, c.TotalResources())
}

func TestResources(t *testing.T) {
	t.Run("sub refuses to go negative", func(t *testing.T) {
		r := Resources{Wood: 1, Oil: 2}

		got, ok := r.Sub(Resources{Oil: 3})
		require.False(t, ok)
		require.Equal(t, r, got)

		got, ok = r.Sub(Resources{Oil: 2})
		require.True(t, ok)
		require.Equal(t, Resources{Wood: 1}, got)
	})

	t.Run("single and totals", func(t *testing.T) {
		r := Single(Food, 3).Add(Single(Metal, 2))

		require.Equal(t, 3, r.Get(Food))
		require.Equal(t, 5, r.Total())
		require.True(t, r.Covers(Resources{Food: 3}))
		require.False(t, r.Covers(Resources{Wood: 1}))
		require.Equal(t, "2 metal, 3 food", r.String())
	})
}

func TestTile(t *testing.T) {
	for _, tile := range []Tile{Woods, Tundra, Mountain, Farm, Village} {
		require.True(t, tile.Producible(), tile.String())
	}
	for _, tile := range []Tile{Lake, Factory, Home} {
		require.False(t, tile.Producible(), tile.String())
	}

	r, ok := Tundra.Resource()
	require.True(t, ok)
	require.Equal(t, Oil, r)
	_, ok = Village.Resource()
	require.False(t, ok, "Villages produce workers")
}

func TestTemplateYAML(t *testing.T) {
	t.Run("decodes positions and tiles", func(t *testing.T) {
		raw := `
fields:
  - {pos: [2, -1], tile: Mountain, tunnel: true, resources: {metal: 1}}
rivers:
  - [[2, -1], [3, -1]]
homes:
  - {pos: [0, 0], start: [[2, -1], [2, -1]]}
`
		var tmpl Template
		require.NoError(t, yaml.Unmarshal([]byte(raw), &tmpl))

		require.Equal(t, []FieldTemplate{{
			Position:   Position{Q: 2, R: -1},
			Tile:       Mountain,
			Tunnelable: true,
			Resources:  Resources{Metal: 1},
		}}, tmpl.Fields)
		require.Equal(t, [2]Position{{Q: 2, R: -1}, {Q: 3, R: -1}}, tmpl.Rivers[0])
	})

	t.Run("rejects unknown tiles", func(t *testing.T) {
		var tmpl Template
		err := yaml.Unmarshal([]byte("fields:\n  - {pos: [0, 0], tile: swamp}\n"), &tmpl)
		require.ErrorContains(t, err, "unknown tile")
	})

	t.Run("rejects malformed positions", func(t *testing.T) {
		var tmpl Template
		err := yaml.Unmarshal([]byte("fields:\n  - {pos: [0, 0, 1], tile: farm}\n"), &tmpl)
		require.ErrorContains(t, err, "two coordinates")
	})
}
