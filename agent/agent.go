package agent

import (
	"golang.org/x/exp/rand"

	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/metrics"
	"github.com/dfb159/scythe-bot/searcher"
	"github.com/dfb159/scythe-bot/turn"
)

type Agent interface {
	// FindTurn returns the turn to play and performance metrics (if collected) from the search
	FindTurn(g *game.Game) (turn.TurnMask, metrics.SearchMetric)
}

// Random plays a uniformly random legal turn.
type Random struct {
	rng     *rand.Rand
	options []turn.Option
}

func NewRandom(seed uint64, options ...turn.Option) *Random {
	return &Random{
		rng:     rand.New(rand.NewSource(seed)),
		options: options,
	}
}

func (r *Random) FindTurn(g *game.Game) (turn.TurnMask, metrics.SearchMetric) {
	// Reservoir sampling keeps a single candidate in memory
	var chosen turn.TurnMask
	n := 0
	for mask := range turn.Actions(g, r.options...) {
		n++
		if r.rng.Intn(n) == 0 {
			chosen = mask
		}
	}
	return chosen, metrics.SearchMetric{Actions: n}
}

// Search picks the most visited turn of a Monte Carlo tree search.
type Search struct {
	mcts *searcher.MCTS
}

func NewSearch(mcts *searcher.MCTS) *Search {
	return &Search{mcts: mcts}
}

func (s *Search) FindTurn(g *game.Game) (turn.TurnMask, metrics.SearchMetric) {
	policy, metric := s.mcts.Simulate(g)
	return policy.Best(), metric
}
