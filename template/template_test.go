package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

func TestDefault(t *testing.T) {
	s := Default()

	require.Len(t, s.Factions, 5)
	require.Len(t, s.Mats, 5)
	require.Len(t, s.Board.Homes, 4)

	b := board.New(s.Board)
	require.Equal(t, len(s.Board.Fields)+len(s.Board.Homes), b.Len())
	require.Len(t, b.Tunnels(), 3)

	mountain, _ := b.GetField(board.Position{Q: 1, R: 0})
	require.Equal(t, board.Mountain, b.Field(mountain).Tile)
	woods, _ := b.GetField(board.Position{Q: 1, R: 1})
	tundra, _ := b.GetField(board.Position{Q: 1, R: 2})
	require.True(t, b.IsRiver(woods, tundra))
}

func TestLookup(t *testing.T) {
	s := Default()

	f, err := s.Faction("Crimea")
	require.NoError(t, err)
	require.Equal(t, 5, f.Power)

	m, err := s.Mat("Industrial")
	require.NoError(t, err)
	require.Equal(t, game.ActionBuild, m.MoveSecondary)
	require.Equal(t, game.SecondaryCost{Cost: 2, Evolutions: 1, Coins: 3}, m.Upgrade)

	_, err = s.Faction("Togawa")
	require.ErrorIs(t, err, ErrUnknownName)
	_, err = s.Mat("Militant")
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestNewGame(t *testing.T) {
	for n := 2; n <= 4; n++ {
		g, err := Default().NewGame(n)
		require.NoError(t, err)
		require.Len(t, g.Players, n)
	}

	_, err := Default().NewGame(5)
	require.ErrorContains(t, err, "at most 4 players")
	_, err = Default().NewGame(1)
	require.ErrorIs(t, err, game.ErrNotEnoughPlayers)
}

func TestParse(t *testing.T) {
	t.Run("unknown secondary action", func(t *testing.T) {
		_, err := Parse([]byte("mats:\n  - {name: x, move: attack}\n"))
		require.ErrorContains(t, err, "unknown secondary action")
	})

	t.Run("secondary linked twice", func(t *testing.T) {
		_, err := Parse([]byte("mats:\n  - {name: x, move: build, trade: build, produce: deploy, bolster: enlist}\n"))
		require.ErrorContains(t, err, "links build twice")
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.yaml")
		require.NoError(t, os.WriteFile(path, defaultTemplate, 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Default(), s)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
		require.ErrorContains(t, err, "template: ")
	})
}
