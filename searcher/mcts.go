package searcher

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/meta"
	"github.com/dfb159/scythe-bot/metrics"
	"github.com/dfb159/scythe-bot/turn"
)

// Actions lists the candidate turns the search considers in a state.
type Actions func(g *game.Game) []turn.TurnMask

// BoundedActions keeps the branching factor manageable: single hops,
// at most one resource of each kind carried and no worker transport.
func BoundedActions(g *game.Game) []turn.TurnMask {
	return turn.GetActions(g, turn.WithMaxHops(1), turn.WithCarryLimit(1), turn.WithoutWorkerCarry())
}

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   Evaluate
	actions    Actions
	metrics    metrics.Collector
}

// Policy is the visit distribution over the root actions.
type Policy struct {
	Actions []turn.TurnMask
	Weights []float64
}

// Best returns the most visited action, or nil if nothing was expanded.
func (p Policy) Best() turn.TurnMask {
	best := -1
	for i, w := range p.Weights {
		if best < 0 || w > p.Weights[best] {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return p.Actions[best]
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithActions(actions Actions) Option {
	return func(m *MCTS) {
		if actions != nil {
			m.actions = actions
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     meta.WITH_CUTOFF,
		evaluate:   EvaluateCoins,
		actions:    BoundedActions,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from g and returns the visit distribution over the
// actions of the active player.
func (m *MCTS) Simulate(g *game.Game) (Policy, metrics.SearchMetric) {
	root := newDecision(nil, -1, g, m.actions)

	m.metrics.Start(m.goroutines, m.cutoff, len(root.actions))
	if len(root.actions) == 0 {
		log.Warn().Msgf("no actions to search at turn %d", g.Turn)
	} else if m.episodes > 0 {
		m.iterate(root, g)
	} else {
		m.countdown(root, g)
	}
	metric := m.metrics.Complete()

	return root.Policy(), metric
}

func (m *MCTS) iterate(root *decision, g *game.Game) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, g)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision, g *game.Game) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, g)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *decision, g *game.Game) {
	node, state := selectThenExpand(root, g, m.actions)
	reward := m.rollout(state)
	backup(node, reward)
}

func selectThenExpand(root *decision, g *game.Game, actions Actions) (*decision, *game.Game) {
	parent := root
	child, state, added := parent.selectOrExpand(g, actions)
	for !added && child != parent {
		parent = child
		child, state, added = parent.selectOrExpand(state, actions)
	}
	return child, state
}

func (m *MCTS) rollout(g *game.Game) func(player int) float64 {
	depth := 0
	// Rollout till a player wins or for cutoff number of turns
	for g.Winner() < 0 && depth < m.cutoff {
		candidates := m.actions(g)
		if len(candidates) == 0 {
			break
		}
		g = play(g, candidates[rand.Intn(len(candidates))]) // Random rollout policy
		depth++
	}

	if winner := g.Winner(); winner >= 0 {
		m.metrics.AddFullPlayout()
		return rewarder(winner, nil)
	}

	// At cutoff, score the state from every player's perspective
	scores := make([]float64, len(g.Players))
	for i := range scores {
		scores[i] = m.evaluate(g, i)
	}
	return rewarder(-1, scores)
}

func backup(node *decision, reward func(player int) float64) {
	for node != nil {
		node = node.backup(reward)
	}
}
