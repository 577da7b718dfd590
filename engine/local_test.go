package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfb159/scythe-bot/agent"
	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/metrics"
	"github.com/dfb159/scythe-bot/template"
	"github.com/dfb159/scythe-bot/turn"
)

// illegal always asks to trade for wood nobody stands on.
type illegal struct{}

func (illegal) FindTurn(g *game.Game) (turn.TurnMask, metrics.SearchMetric) {
	return turn.PrimaryOnly{Action: turn.Trade{}}, metrics.SearchMetric{}
}

func TestNewLocal(t *testing.T) {
	g, err := template.Default().NewGame(2)
	require.NoError(t, err)

	_, err = NewLocal(g, []agent.Agent{illegal{}}, 10)
	require.ErrorIs(t, err, ErrAgentCount)

	e, err := NewLocal(g, []agent.Agent{illegal{}, illegal{}}, 0)
	require.NoError(t, err)
	require.Positive(t, e.MaxTurns)
}

func TestLocalRun(t *testing.T) {
	t.Run("random agents", func(t *testing.T) {
		g, err := template.Default().NewGame(3)
		require.NoError(t, err)
		options := []turn.Option{turn.WithMaxHops(1), turn.WithCarryLimit(1), turn.WithoutWorkerCarry()}
		agents := []agent.Agent{agent.NewRandom(1, options...), agent.NewRandom(2, options...), agent.NewRandom(3, options...)}

		e, err := NewLocal(g, agents, 30)
		require.NoError(t, err)
		winner, gameMetric, moves := e.Run()

		require.Equal(t, -1, winner)
		require.Equal(t, 30, gameMetric.TotalTurns)
		require.Len(t, moves, 30)
		require.Equal(t, []string{"Saxony", "Rusviet", "Nordic"}, gameMetric.Players)
		require.Len(t, gameMetric.Scores, 3)
		require.Equal(t, e.ID, gameMetric.ID)
		for i, m := range moves {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, i%3, m.Player)
		}
	})

	t.Run("illegal turns are replaced by tax", func(t *testing.T) {
		g, err := template.Default().NewGame(2)
		require.NoError(t, err)

		e, err := NewLocal(g, []agent.Agent{illegal{}, illegal{}}, 4)
		require.NoError(t, err)
		_, _, moves := e.Run()

		require.Len(t, moves, 4)
		for _, m := range moves {
			require.Equal(t, "tax", m.Action)
		}
		require.Equal(t, 6, g.Players[0].Coins)
	})

	t.Run("stops at the winner", func(t *testing.T) {
		g, err := template.Default().NewGame(2)
		require.NoError(t, err)
		p := &g.Players[1]
		p.Military.Add(game.MaxMilitary)
		p.Popularity.Add(game.MaxPopularity)
		p.Upgrades.Star = true
		p.Mechs.Star = true
		p.Buildings.Star = true
		p.Recruits.Star = true

		e, err := NewLocal(g, []agent.Agent{illegal{}, illegal{}}, 10)
		require.NoError(t, err)
		winner, gameMetric, moves := e.Run()

		require.Equal(t, 1, winner)
		require.Equal(t, "Rusviet", gameMetric.Winner)
		require.Empty(t, moves)
	})
}
