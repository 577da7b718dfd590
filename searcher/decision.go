package searcher

import (
	"math"
	"sync"

	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/turn"
)

// decision is a tree node for one game state. Rewards are credited to the
// mover, the player whose action led into the node.
type decision struct {
	sync.RWMutex
	parent   *decision
	mover    int
	actions  []turn.TurnMask
	children []*decision
	rewards  float64
	visits   int
}

func newDecision(parent *decision, mover int, g *game.Game, actions Actions) *decision {
	var candidates []turn.TurnMask
	if g.Winner() < 0 {
		candidates = actions(g)
	}
	return &decision{
		parent:   parent,
		mover:    mover,
		actions:  candidates,
		children: make([]*decision, 0, len(candidates)),
	}
}

// selectOrExpand descends one level. It returns the chosen child, the state
// of the child, and whether the child was newly added.
func (d *decision) selectOrExpand(g *game.Game, actions Actions) (*decision, *game.Game, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.actions) == 0 { // Terminal node
		return d, g, false
	}

	if len(d.actions) > len(d.children) { // Expandable node
		action := d.actions[len(d.children)]
		next := play(g, action)
		child := newDecision(d, g.Active(), next, actions)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, next, true
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, play(g, d.actions[ith]), false
}

func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(CSquared, float64(d.visits))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(policy)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss adds a virtual loss so that concurrent episodes spread out.
func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += LOSS
	d.visits++
}

func (d *decision) score(policy *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	if d.visits == 0 {
		return math.Inf(1)
	}
	return policy.evaluate(d.rewards, float64(d.visits))
}

func (d *decision) backup(reward func(player int) float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= LOSS
		d.visits--
	}

	d.rewards += reward(d.mover)
	d.visits++

	return d.parent
}

func (d *decision) Visits() int {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy returns the visit share of each expanded action.
func (d *decision) Policy() Policy {
	d.RLock()
	defer d.RUnlock()

	policy := Policy{
		Actions: make([]turn.TurnMask, len(d.children)),
		Weights: make([]float64, len(d.children)),
	}
	total := 0
	for i, child := range d.children {
		policy.Actions[i] = d.actions[i]
		visits := child.Visits()
		policy.Weights[i] = float64(visits)
		total += visits
	}
	if total > 0 {
		for i := range policy.Weights {
			policy.Weights[i] /= float64(total)
		}
	}
	return policy
}

// play applies an action the enumerator produced, so it cannot be rejected.
func play(g *game.Game, action turn.TurnMask) *game.Game {
	next, err := turn.Play(g, action)
	if err != nil {
		panic(err)
	}
	return next
}
