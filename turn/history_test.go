package turn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

func TestHistoryResources(t *testing.T) {
	g := newGame(t)
	mountain := fieldAt(t, g, 1, 0)
	farm := fieldAt(t, g, 2, 0)
	stock(t, g, 1, 0, board.Resources{Metal: 2})

	h := NewHistory()
	h.recordResources(mountain, farm, board.Resources{Metal: 2})

	available, err := h.Available(g.Board, mountain)
	require.NoError(t, err)
	require.Equal(t, none, available)
	available, err = h.Available(g.Board, farm)
	require.NoError(t, err)
	require.Equal(t, board.Resources{Metal: 2}, available)

	branch := h.Clone()
	branch.recordResources(mountain, farm, board.Resources{Metal: 1})
	_, err = branch.Available(g.Board, mountain)
	require.ErrorIs(t, err, ErrResourceHistoryNegative)

	_, err = h.Available(g.Board, mountain)
	require.NoError(t, err, "Clones should not share entries")
	require.Equal(t, board.Resources{Metal: 2}, g.Board.Field(mountain).Resources, "The ledger never touches the board")
}

func TestHistoryWorkers(t *testing.T) {
	g := newGame(t)
	p := &g.Players[0]
	mountain := fieldAt(t, g, 1, 0)
	farm := fieldAt(t, g, 0, 1)
	tundra := fieldAt(t, g, 3, 0)

	h := NewHistory()
	h.recordWorkers(mountain, farm, W1)

	stationed, err := h.Stationed(p, farm)
	require.NoError(t, err)
	require.Equal(t, W1|W2, stationed)
	stationed, err = h.Stationed(p, mountain)
	require.NoError(t, err)
	require.Zero(t, stationed)
	require.Equal(t, farm, h.WorkerField(p, game.Worker1))
	require.Equal(t, farm, h.WorkerField(p, game.Worker2))

	missing := h.Clone()
	missing.recordWorkers(mountain, tundra, W1)
	_, err = missing.Stationed(p, mountain)
	require.ErrorIs(t, err, ErrWorkersNotStationed)

	twice := h.Clone()
	twice.recordWorkers(tundra, farm, W2)
	_, err = twice.Stationed(p, farm)
	require.ErrorIs(t, err, ErrWorkersAlreadyStationed)
}

func TestHistoryMoved(t *testing.T) {
	g := newGame(t)
	h := NewHistory()
	require.False(t, h.CharacterMoved())

	c := newChecker(g, h)
	require.NoError(t, c.movement(CharacterMove{Hops: Single(pos(1, 0), none)}))
	require.NoError(t, c.movement(WorkerMove{Worker: game.Worker1, Hops: Single(pos(2, 0), none)}))

	require.True(t, h.CharacterMoved())
	require.Equal(t, Workers(game.Worker1), h.WorkersMoved())
	require.Zero(t, h.MechsMoved())
	require.ErrorIs(t, c.movement(WorkerMove{Worker: game.Worker1, Hops: Single(pos(1, 0), none)}), ErrWorkerMoved)
}

func TestMasks(t *testing.T) {
	t.Run("workers", func(t *testing.T) {
		m := Workers(game.Worker1, game.Worker3, game.Worker8)

		require.Equal(t, W1|W3|W8, m)
		require.Equal(t, 3, m.Len())
		require.Equal(t, []game.Worker{game.Worker1, game.Worker3, game.Worker8}, m.List())
		require.Equal(t, "{worker1,worker3,worker8}", m.String())
		require.True(t, m.Contains(W1|W8))
		require.False(t, m.Contains(W1|W2))
		require.True(t, m.Intersects(W2|W3))
		require.Equal(t, W1|W8, m.Difference(W3))
		require.Equal(t, AllWorkers, m.Union(AllWorkers.Difference(m)))
	})

	t.Run("mechs", func(t *testing.T) {
		m := MechBit(game.Mech2).Union(M4)

		require.True(t, m.Has(game.Mech4))
		require.False(t, m.Has(game.Mech1))
		require.True(t, m.Contains(M2))
		require.False(t, m.Intersects(M1|M3))
		require.Equal(t, M4, m.Difference(M2))
	})

	t.Run("strings", func(t *testing.T) {
		mask := PrimaryAndSecondary{
			Action: Move{Steps: []UnitMovement{
				WorkerMove{Worker: game.Worker1, Hops: Single(pos(2, 0), board.Resources{Metal: 1})},
				MechMove{Mech: game.Mech1, Hops: []MechHop{{To: pos(1, 1), Workers: W2}}},
				CharacterMove{Hops: Double(pos(1, 0), none, pos(2, 0), none)},
			}},
			Follow: Build{Building: game.Mill, Worker: game.Worker1},
		}
		require.Equal(t,
			"move[worker1 -> (2,0) carrying 1 metal; mech1 -> (1,1) with {worker2}; character -> (1,0) -> (2,0)] + build[mill at worker1]",
			mask.String())
	})

	t.Run("categories", func(t *testing.T) {
		require.Equal(t, game.ActionProduce, MapPrimary(Produce{}))
		require.Equal(t, game.ActionEnlist, MapSecondary(Enlist{}))
		require.Panics(t, func() { MapPrimary(nil) })
		require.Panics(t, func() { MapSecondary(nil) })
	})
}
