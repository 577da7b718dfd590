package turn

import (
	"iter"
	"slices"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

type Option func(e *enumerator)

// WithMaxHops limits unit movements to single hops when hops is 1.
func WithMaxHops(hops int) Option {
	return func(e *enumerator) {
		if hops == 1 || hops == 2 {
			e.maxHops = hops
		}
	}
}

// WithCarryLimit caps how many units of each resource a hop may carry.
func WithCarryLimit(limit int) Option {
	return func(e *enumerator) {
		if limit >= 0 {
			e.carryLimit = limit
		}
	}
}

// WithoutWorkerCarry stops mechs from carrying workers.
func WithoutWorkerCarry() Option {
	return func(e *enumerator) {
		e.workerCarry = false
	}
}

type enumerator struct {
	g           *game.Game
	p           *game.Player
	maxHops     int
	carryLimit  int
	workerCarry bool
}

func newEnumerator(g *game.Game, options ...Option) *enumerator {
	e := &enumerator{ // Default values enumerate every legal action
		g:           g,
		p:           g.ActivePlayer(),
		maxHops:     2,
		carryLimit:  -1,
		workerCarry: true,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Actions streams the legal turns of the active player. Without options the
// sequence contains every turn Check accepts.
func Actions(g *game.Game, options ...Option) iter.Seq[TurnMask] {
	e := newEnumerator(g, options...)
	return func(yield func(TurnMask) bool) {
		for a := range e.primaries() {
			if !yield(PrimaryOnly{Action: a}) {
				return
			}
			for s := range e.secondaries(a) {
				if !yield(PrimaryAndSecondary{Action: a, Follow: s}) {
					return
				}
			}
		}
	}
}

// GetActions collects Actions into a slice.
func GetActions(g *game.Game, options ...Option) []TurnMask {
	return slices.Collect(Actions(g, options...))
}

func (e *enumerator) primaries() iter.Seq[Primary] {
	return func(yield func(Primary) bool) {
		if !yield(Tax{}) {
			return
		}
		if e.p.Coins >= 1 {
			if !e.trades(yield) {
				return
			}
			for _, a := range []Primary{Promote{}, Bolster{}, Enforce{}} {
				if !yield(a) {
					return
				}
			}
		}
		if e.p.CanProduce() && !e.produces(yield) {
			return
		}
		e.moves(yield)
	}
}

func (e *enumerator) trades(yield func(Primary) bool) bool {
	units := e.p.Units()
	c := newChecker(e.g, NewHistory())
	for _, u1 := range units {
		for _, r1 := range board.AllResources {
			for _, u2 := range units {
				for _, r2 := range board.AllResources {
					t := Trade{Gains: [2]TradeUnit{{Unit: u1, Resource: r1}, {Unit: u2, Resource: r2}}}
					if c.trade(t) != nil {
						continue
					}
					if !yield(t) {
						return false
					}
				}
			}
		}
	}
	return true
}

func (e *enumerator) produces(yield func(Primary) bool) bool {
	var workers []game.Worker
	for w := game.Worker1; w <= game.Worker8; w++ {
		if e.p.Workers.IsDeployed(w) {
			workers = append(workers, w)
		}
	}
	limit := 2
	if e.p.Upgrades.IsEvolved(game.UpgradeProduce) {
		limit = 3
	}
	c := newChecker(e.g, NewHistory())

	var walk func(chosen []game.Worker) bool
	walk = func(chosen []game.Worker) bool {
		for _, w := range workers {
			if slices.Contains(chosen, w) {
				continue
			}
			next := append(chosen[:len(chosen):len(chosen)], w)
			a := Produce{Workers: next}
			if c.produce(a) != nil {
				continue
			}
			if !yield(a) {
				return false
			}
			if len(next) < limit && !walk(next) {
				return false
			}
		}
		return true
	}
	return walk(nil)
}

// moves builds move sequences depth first. Every extension is validated on a
// clone of the ledger, so each yielded Move passes CheckPrimary.
func (e *enumerator) moves(yield func(Primary) bool) bool {
	limit := 2
	if e.p.Upgrades.IsEvolved(game.UpgradeMove) {
		limit = 3
	}

	var walk func(h *History, steps []UnitMovement) bool
	walk = func(h *History, steps []UnitMovement) bool {
		for m, after := range e.movements(h) {
			next := append(steps[:len(steps):len(steps)], m)
			if !yield(Move{Steps: next}) {
				return false
			}
			if len(next) < limit && !walk(after, next) {
				return false
			}
		}
		return true
	}
	return walk(NewHistory(), nil)
}

// movements yields every legal single unit movement given the ledger h,
// together with the ledger after that movement.
func (e *enumerator) movements(h *History) iter.Seq2[UnitMovement, *History] {
	return func(yield func(UnitMovement, *History) bool) {
		if !h.CharacterMoved() {
			from := e.p.Character
			build := func(hops []Hop) UnitMovement { return CharacterMove{Hops: hops} }
			if !e.walkerPaths(h, from, build, yield) {
				return
			}
		}
		for w := game.Worker1; w <= game.Worker8; w++ {
			if !e.p.Workers.IsDeployed(w) || h.WorkersMoved().Has(w) {
				continue
			}
			build := func(hops []Hop) UnitMovement { return WorkerMove{Worker: w, Hops: hops} }
			if !e.walkerPaths(h, h.WorkerField(e.p, w), build, yield) {
				return
			}
		}
		for m := game.Mech1; m <= game.Mech4; m++ {
			if !e.p.Mechs.IsDeployed(m) || h.MechsMoved().Has(m) {
				continue
			}
			if !e.mechPaths(h, m, yield) {
				return
			}
		}
	}
}

// try validates m on a clone of h.
func (e *enumerator) try(h *History, m UnitMovement) (*History, bool) {
	next := h.Clone()
	if newChecker(e.g, next).movement(m) != nil {
		return nil, false
	}
	return next, true
}

func (e *enumerator) walkerPaths(h *History, from board.FieldID, build func([]Hop) UnitMovement, yield func(UnitMovement, *History) bool) bool {
	available, err := h.Available(e.g.Board, from)
	if err != nil {
		return true
	}
	for _, first := range e.destinations(from) {
		firstPos := e.g.Board.Field(first).Position
		for _, carry := range e.carries(available) {
			single := []Hop{{To: firstPos, Carry: carry}}
			after, ok := e.try(h, build(single))
			if !ok {
				continue
			}
			if !yield(build(single), after) {
				return false
			}
			if e.maxHops < 2 {
				continue
			}
			midway, err := after.Available(e.g.Board, first)
			if err != nil {
				continue
			}
			for _, second := range e.destinations(first) {
				secondPos := e.g.Board.Field(second).Position
				for _, carry2 := range e.carries(midway) {
					double := []Hop{single[0], {To: secondPos, Carry: carry2}}
					after2, ok := e.try(h, build(double))
					if !ok {
						continue
					}
					if !yield(build(double), after2) {
						return false
					}
				}
			}
		}
	}
	return true
}

func (e *enumerator) mechPaths(h *History, m game.Mech, yield func(UnitMovement, *History) bool) bool {
	from := e.p.Mechs.Fields[m]
	available, err := h.Available(e.g.Board, from)
	if err != nil {
		return true
	}
	stationed, err := h.Stationed(e.p, from)
	if err != nil {
		return true
	}
	for _, first := range e.destinations(from) {
		firstPos := e.g.Board.Field(first).Position
		for _, carry := range e.carries(available) {
			for _, workers := range e.crews(stationed) {
				single := MechMove{Mech: m, Hops: []MechHop{{To: firstPos, Workers: workers, Carry: carry}}}
				after, ok := e.try(h, single)
				if !ok {
					continue
				}
				if !yield(single, after) {
					return false
				}
				if e.maxHops < 2 {
					continue
				}
				midway, err := after.Available(e.g.Board, first)
				if err != nil {
					continue
				}
				aboard, err := after.Stationed(e.p, first)
				if err != nil {
					continue
				}
				for _, second := range e.destinations(first) {
					secondPos := e.g.Board.Field(second).Position
					for _, carry2 := range e.carries(midway) {
						for _, workers2 := range e.crews(aboard) {
							double := MechMove{Mech: m, Hops: []MechHop{
								single.Hops[0],
								{To: secondPos, Workers: workers2, Carry: carry2},
							}}
							after2, ok := e.try(h, double)
							if !ok {
								continue
							}
							if !yield(double, after2) {
								return false
							}
						}
					}
				}
			}
		}
	}
	return true
}

// destinations lists the fields a unit could reach from field in one hop:
// hex neighbours plus, from a tunnel, every other tunnel of the player.
func (e *enumerator) destinations(from board.FieldID) []board.FieldID {
	b := e.g.Board
	dests := slices.Clone(b.Neighbors(from))
	if !e.p.Tunnel(b.Field(from)) {
		return dests
	}
	for id := board.FieldID(0); int(id) < b.Len(); id++ {
		if id != from && e.p.Tunnel(b.Field(id)) && !slices.Contains(dests, id) {
			dests = append(dests, id)
		}
	}
	return dests
}

// carries lists every inventory a hop can take from available, bounded by
// the carry limit.
func (e *enumerator) carries(available board.Resources) []board.Resources {
	bound := func(n int) int {
		if e.carryLimit >= 0 {
			return min(n, e.carryLimit)
		}
		return n
	}
	var out []board.Resources
	for wood := 0; wood <= bound(available.Wood); wood++ {
		for metal := 0; metal <= bound(available.Metal); metal++ {
			for oil := 0; oil <= bound(available.Oil); oil++ {
				for food := 0; food <= bound(available.Food); food++ {
					out = append(out, board.Resources{Wood: wood, Metal: metal, Oil: oil, Food: food})
				}
			}
		}
	}
	return out
}

// crews lists the subsets of stationed workers a mech can take along.
func (e *enumerator) crews(stationed WorkerMask) []WorkerMask {
	crews := []WorkerMask{0}
	if !e.workerCarry {
		return crews
	}
	for sub := -stationed & stationed; sub != 0; sub = (sub - stationed) & stationed {
		crews = append(crews, sub)
	}
	return crews
}

// secondaries yields the secondary actions that may follow a, evaluated on
// the state a leaves behind.
func (e *enumerator) secondaries(a Primary) iter.Seq[Secondary] {
	return func(yield func(Secondary) bool) {
		category := MapPrimary(a)
		kind := e.p.Secondary(category)
		next := e.g.Copy()
		ExecutePrimary(next, a)
		if !next.CanAfford(next.Active(), kind) {
			return
		}
		p := next.ActivePlayer()

		var candidates []Secondary
		switch kind {
		case game.ActionUpgrade:
			for _, pu := range game.AllPrimaryUpgrades {
				for _, su := range game.AllSecondaryActions {
					candidates = append(candidates, Upgrade{Primary: pu, Secondary: su})
				}
			}
		case game.ActionDeploy:
			for m := game.Mech1; m <= game.Mech4; m++ {
				for w := game.Worker1; w <= game.Worker8; w++ {
					if p.Workers.IsDeployed(w) && !p.Mechs.IsDeployed(m) {
						candidates = append(candidates, Deploy{Mech: m, Worker: w})
					}
				}
			}
		case game.ActionBuild:
			for _, b := range game.AllBuildings {
				for w := game.Worker1; w <= game.Worker8; w++ {
					if p.Workers.IsDeployed(w) && !p.Buildings.IsBuilt(b) {
						candidates = append(candidates, Build{Building: b, Worker: w})
					}
				}
			}
		case game.ActionEnlist:
			for _, r := range game.AllRecruits {
				for _, o := range game.AllRecruits {
					candidates = append(candidates, Enlist{Secondary: r, OneTime: o})
				}
			}
		}

		for _, s := range candidates {
			if checkSecondary(next, category, s) != nil {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
