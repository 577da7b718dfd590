package turn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

func actionKeys(masks []TurnMask) map[string]bool {
	keys := make(map[string]bool, len(masks))
	for _, m := range masks {
		keys[m.String()] = true
	}
	return keys
}

// candidates builds a superset of the turns that are legal on the test
// board, without looking at the game beyond its positions.
func candidates(g *game.Game) []TurnMask {
	var positions []board.Position
	for id := board.FieldID(0); int(id) < g.Board.Len(); id++ {
		positions = append(positions, g.Board.Field(id).Position)
	}
	positions = append(positions, pos(9, 9))
	carries := []board.Resources{none, {Metal: 1}}

	var primaries []Primary
	primaries = append(primaries, Tax{}, Promote{}, Bolster{}, Enforce{})

	var units []game.UnitRef
	units = append(units, game.Character())
	for w := game.Worker1; w <= game.Worker8; w++ {
		units = append(units, game.WorkerUnit(w))
	}
	for m := game.Mech1; m <= game.Mech4; m++ {
		units = append(units, game.MechUnit(m))
	}
	for _, b := range game.AllBuildings {
		units = append(units, game.BuildingUnit(b))
	}
	for _, u1 := range units {
		for _, r1 := range board.AllResources {
			for _, u2 := range units {
				for _, r2 := range board.AllResources {
					primaries = append(primaries, tradeOf(u1, r1, u2, r2))
				}
			}
		}
	}

	var produce func(workers []game.Worker)
	produce = func(workers []game.Worker) {
		if len(workers) == 3 {
			return
		}
		for w := game.Worker1; w <= game.Worker8; w++ {
			next := append(workers[:len(workers):len(workers)], w)
			primaries = append(primaries, Produce{Workers: next})
			produce(next)
		}
	}
	produce(nil)

	var singles []UnitMovement
	for _, to := range positions {
		for _, carry := range carries {
			singles = append(singles, CharacterMove{Hops: Single(to, carry)})
			for w := game.Worker1; w <= game.Worker3; w++ {
				singles = append(singles, WorkerMove{Worker: w, Hops: Single(to, carry)})
			}
			for m := game.Mech1; m <= game.Mech2; m++ {
				for _, crew := range []WorkerMask{0, W1, W2, W1 | W2} {
					singles = append(singles, MechMove{Mech: m, Hops: []MechHop{{To: to, Workers: crew, Carry: carry}}})
				}
			}
		}
	}
	var doubles []UnitMovement
	for _, first := range positions {
		for _, second := range positions {
			doubles = append(doubles,
				CharacterMove{Hops: Double(first, none, second, none)},
				WorkerMove{Worker: game.Worker1, Hops: Double(first, none, second, none)},
				WorkerMove{Worker: game.Worker1, Hops: Double(first, board.Resources{Metal: 1}, second, board.Resources{Metal: 1})},
				MechMove{Mech: game.Mech1, Hops: []MechHop{{To: first, Workers: W1}, {To: second}}},
			)
		}
	}
	for _, m := range singles {
		primaries = append(primaries, Move{Steps: []UnitMovement{m}})
	}
	for _, m := range doubles {
		primaries = append(primaries, Move{Steps: []UnitMovement{m}})
	}
	var pairable []UnitMovement
	for _, m := range singles {
		switch m := m.(type) {
		case WorkerMove:
			if m.Worker == game.Worker3 {
				continue
			}
		case MechMove:
			if m.Mech != game.Mech1 || m.Hops[0].Workers.Has(game.Worker2) {
				continue
			}
		}
		pairable = append(pairable, m)
	}
	for _, m1 := range pairable {
		for _, m2 := range pairable {
			primaries = append(primaries, Move{Steps: []UnitMovement{m1, m2}})
		}
	}

	var secondaries []Secondary
	for _, pu := range game.AllPrimaryUpgrades {
		for _, su := range game.AllSecondaryActions {
			secondaries = append(secondaries, Upgrade{Primary: pu, Secondary: su})
		}
	}
	for m := game.Mech1; m <= game.Mech4; m++ {
		for w := game.Worker1; w <= game.Worker8; w++ {
			secondaries = append(secondaries, Deploy{Mech: m, Worker: w})
		}
	}
	for _, b := range game.AllBuildings {
		for w := game.Worker1; w <= game.Worker8; w++ {
			secondaries = append(secondaries, Build{Building: b, Worker: w})
		}
	}
	for _, r := range game.AllRecruits {
		for _, o := range game.AllRecruits {
			secondaries = append(secondaries, Enlist{Secondary: r, OneTime: o})
		}
	}

	var masks []TurnMask
	for _, a := range primaries {
		masks = append(masks, PrimaryOnly{Action: a})
	}
	followed := []Primary{
		Tax{}, Promote{}, Bolster{}, Enforce{},
		Produce{Workers: []game.Worker{game.Worker1}},
		Produce{Workers: []game.Worker{game.Worker2}},
		Move{Steps: []UnitMovement{WorkerMove{Worker: game.Worker1, Hops: Single(pos(2, 0), none)}}},
		Move{Steps: []UnitMovement{WorkerMove{Worker: game.Worker2, Hops: Single(pos(0, 2), none)}}},
	}
	for _, a := range followed {
		for _, s := range secondaries {
			masks = append(masks, PrimaryAndSecondary{Action: a, Follow: s})
		}
	}
	return masks
}

func TestActions(t *testing.T) {
	states := []struct {
		name  string
		setup func(t *testing.T, g *game.Game)
	}{
		{
			name: "opening",
		},
		{
			name: "resources and buildings",
			setup: func(t *testing.T, g *game.Game) {
				stock(t, g, 1, 0, board.Resources{Metal: 1})
				stock(t, g, 2, 4, board.Resources{Wood: 3})
				g.Players[0].Buildings.Build(game.Monument, fieldAt(t, g, 2, 4))
			},
		},
		{
			name: "mech",
			setup: func(t *testing.T, g *game.Game) {
				stock(t, g, 1, 0, board.Resources{Metal: 1})
				g.Players[0].Mechs.Deploy(game.Mech1, fieldAt(t, g, 1, 0))
			},
		},
	}

	for _, tt := range states {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t)
			if tt.setup != nil {
				tt.setup(t, g)
			}
			before := g.Hash()
			actions := GetActions(g)
			require.Equal(t, before, g.Hash(), "Enumerating should not change the game")

			for _, mask := range actions {
				require.NoError(t, Check(g, mask), mask.String())
			}

			keys := actionKeys(actions)
			require.Len(t, keys, len(actions), "Every action should be listed once")
			accepted := 0
			for _, mask := range candidates(g) {
				if Check(g, mask) != nil {
					continue
				}
				accepted++
				require.True(t, keys[mask.String()], "legal turn %s is missing", mask)
			}
			require.Positive(t, accepted)
		})
	}
}

func TestActionsContent(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		g := newGame(t)
		keys := actionKeys(GetActions(g))

		for _, mask := range []TurnMask{
			PrimaryOnly{Action: Tax{}},
			PrimaryOnly{Action: Promote{}},
			PrimaryOnly{Action: Bolster{}},
			PrimaryOnly{Action: Enforce{}},
			PrimaryOnly{Action: Produce{Workers: []game.Worker{game.Worker2, game.Worker1}}},
			moves(CharacterMove{Hops: Double(pos(0, 1), none, pos(0, 2), none)}),
			moves(
				WorkerMove{Worker: game.Worker1, Hops: Double(pos(1, 1), none, pos(2, 3), none)},
				WorkerMove{Worker: game.Worker2, Hops: Single(pos(1, 1), none)},
			),
		} {
			require.True(t, keys[mask.String()], "missing %s", mask)
		}
		for key := range keys {
			require.NotContains(t, key, "trade", "Nothing to trade without resources")
		}
	})

	t.Run("no coins", func(t *testing.T) {
		g := newGame(t)
		g.Players[0].Coins = 0
		stock(t, g, 1, 0, board.Resources{Metal: 2})
		var paid []string
		for mask := range Actions(g) {
			switch mask.Primary().(type) {
			case Trade, Promote, Bolster, Enforce:
				paid = append(paid, mask.String())
			}
		}
		require.Empty(t, paid)
	})

	t.Run("stops when asked", func(t *testing.T) {
		g := newGame(t)
		n := 0
		for range Actions(g) {
			n++
			if n == 5 {
				break
			}
		}
		require.Equal(t, 5, n)
	})
}

func TestActionsOptions(t *testing.T) {
	g := newGame(t)
	stock(t, g, 1, 0, board.Resources{Metal: 2})
	g.Players[0].Mechs.Deploy(game.Mech1, fieldAt(t, g, 1, 0))

	t.Run("single hops", func(t *testing.T) {
		for _, mask := range GetActions(g, WithMaxHops(1)) {
			require.NoError(t, Check(g, mask), mask.String())
			if m, ok := mask.Primary().(Move); ok {
				for _, step := range m.Steps {
					switch step := step.(type) {
					case CharacterMove:
						require.Len(t, step.Hops, 1)
					case WorkerMove:
						require.Len(t, step.Hops, 1)
					case MechMove:
						require.Len(t, step.Hops, 1)
					}
				}
			}
		}
	})

	t.Run("carry limit", func(t *testing.T) {
		for _, mask := range GetActions(g, WithMaxHops(1), WithCarryLimit(1), WithoutWorkerCarry()) {
			require.NoError(t, Check(g, mask), mask.String())
			require.NotContains(t, mask.String(), "2 metal")
			require.NotContains(t, mask.String(), " with ")
		}
	})

	t.Run("bounded actions still offer every other kind", func(t *testing.T) {
		keys := actionKeys(GetActions(g, WithMaxHops(1), WithCarryLimit(0), WithoutWorkerCarry()))
		require.True(t, keys[PrimaryOnly{Action: Tax{}}.String()])
		require.True(t, keys[PrimaryOnly{Action: tradeOf(
			game.MechUnit(game.Mech1), board.Metal, game.WorkerUnit(game.Worker1), board.Metal,
		)}.String()])
		require.True(t, keys[moves(MechMove{Mech: game.Mech1, Hops: []MechHop{{To: pos(2, 0)}}}).String()])
		require.False(t, keys[moves(MechMove{Mech: game.Mech1, Hops: []MechHop{{To: pos(2, 0), Workers: W1}}}).String()])
	})
}
