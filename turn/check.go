package turn

import (
	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

// checker validates actions of the active player against a game snapshot.
// It never mutates the game; hypothetical moves go to the History.
type checker struct {
	g      *game.Game
	player int
	p      *game.Player
	h      *History
}

func newChecker(g *game.Game, h *History) *checker {
	return &checker{
		g:      g,
		player: g.Active(),
		p:      g.ActivePlayer(),
		h:      h,
	}
}

// CheckPrimary returns nil if the active player may perform the primary
// action, or the reason it is rejected.
func CheckPrimary(g *game.Game, a Primary) error {
	return newChecker(g, NewHistory()).primary(a)
}

// CheckSecondary validates a secondary action as it would follow the given
// primary action. The primary action must itself be legal; the secondary is
// checked against the state the primary leaves behind.
func CheckSecondary(g *game.Game, a Primary, s Secondary) error {
	if err := CheckPrimary(g, a); err != nil {
		return err
	}
	return checkSecondaryAfter(g, a, s)
}

// Check validates a complete turn.
func Check(g *game.Game, mask TurnMask) error {
	if mask == nil {
		return ErrUnknownAction
	}
	a := mask.Primary()
	if err := CheckPrimary(g, a); err != nil {
		return err
	}
	if s, ok := mask.Secondary(); ok {
		return checkSecondaryAfter(g, a, s)
	}
	return nil
}

func checkSecondaryAfter(g *game.Game, a Primary, s Secondary) error {
	next := g.Copy()
	ExecutePrimary(next, a)
	return checkSecondary(next, MapPrimary(a), s)
}

func (c *checker) primary(a Primary) error {
	switch a := a.(type) {
	case Move:
		return c.move(a)
	case Tax:
		return nil
	case Trade:
		return c.trade(a)
	case Promote, Bolster, Enforce:
		if c.p.Coins < 1 {
			return ErrNotEnoughCoins
		}
		return nil
	case Produce:
		return c.produce(a)
	}
	return ErrUnknownAction
}

func (c *checker) move(m Move) error {
	switch n := len(m.Steps); {
	case n == 0 || n > 3:
		return ErrStepCount
	case n == 3 && !c.p.Upgrades.IsEvolved(game.UpgradeMove):
		return ErrMove3NotEvolved
	}
	for _, step := range m.Steps {
		if err := c.movement(step); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) movement(m UnitMovement) error {
	switch m := m.(type) {
	case CharacterMove:
		if len(m.Hops) == 0 || len(m.Hops) > 2 {
			return ErrHopCount
		}
		if c.h.characterMoved {
			return ErrCharacterMoved
		}
		from := c.p.Character
		for _, hop := range m.Hops {
			to, err := c.traverse(from, hop.To)
			if err != nil {
				return err
			}
			c.h.characterMoved = true
			if err := c.carry(from, to, hop.Carry); err != nil {
				return err
			}
			from = to
		}
		return nil

	case WorkerMove:
		if len(m.Hops) == 0 || len(m.Hops) > 2 {
			return ErrHopCount
		}
		if !c.p.Workers.IsDeployed(m.Worker) {
			return ErrWorkerNotDeployed
		}
		if c.h.workerMoved.Has(m.Worker) {
			return ErrWorkerMoved
		}
		bit := WorkerBit(m.Worker)
		from := c.h.WorkerField(c.p, m.Worker)
		for _, hop := range m.Hops {
			to, err := c.traverse(from, hop.To)
			if err != nil {
				return err
			}
			c.h.workerMoved |= bit
			if err := c.shift(from, to, bit, ErrWorkersNotStationed, ErrWorkersAlreadyStationed); err != nil {
				return err
			}
			if err := c.carry(from, to, hop.Carry); err != nil {
				return err
			}
			from = to
		}
		return nil

	case MechMove:
		if len(m.Hops) == 0 || len(m.Hops) > 2 {
			return ErrHopCount
		}
		if !c.p.Mechs.IsDeployed(m.Mech) {
			return ErrMechNotDeployed
		}
		if c.h.mechMoved.Has(m.Mech) {
			return ErrMechMoved
		}
		from := c.p.Mechs.Fields[m.Mech]
		for _, hop := range m.Hops {
			to, err := c.traverse(from, hop.To)
			if err != nil {
				return err
			}
			c.h.mechMoved |= MechBit(m.Mech)
			if err := c.carry(from, to, hop.Carry); err != nil {
				return err
			}
			if hop.Workers != 0 {
				if err := c.shift(from, to, hop.Workers, ErrSourceMissing, ErrTargetHasWorker); err != nil {
					return err
				}
			}
			from = to
		}
		return nil
	}
	return ErrUnknownAction
}

// traverse checks a single hop of a unit and resolves its destination.
func (c *checker) traverse(from board.FieldID, pos board.Position) (board.FieldID, error) {
	b := c.g.Board
	to, ok := b.GetField(pos)
	if !ok {
		return board.NoField, ErrInvalidTarget
	}
	if to == from {
		return board.NoField, ErrSameField
	}
	src, dst := b.Field(from), b.Field(to)
	if !c.p.Tunnel(src) || !c.p.Tunnel(dst) {
		if !b.IsAdjacent(from, to) {
			return board.NoField, ErrNotAdjacent
		}
		if b.IsRiver(from, to) {
			return board.NoField, ErrRiver
		}
	}
	if dst.Tile == board.Lake || dst.Tile == board.Home {
		return board.NoField, ErrImpassable
	}
	for i := range c.g.Players {
		if i != c.player && c.g.Players[i].Occupies(to) {
			return board.NoField, ErrOccupied
		}
	}
	return to, nil
}

// carry records resources taken along a hop.
func (c *checker) carry(from, to board.FieldID, amount board.Resources) error {
	if amount.Negative() {
		return ErrNegativeCarry
	}
	if amount.IsZero() {
		return nil
	}
	available, err := c.h.Available(c.g.Board, from)
	if err != nil {
		return err
	}
	if !available.Covers(amount) {
		return ErrNotEnoughToCarry
	}
	c.h.recordResources(from, to, amount)
	return nil
}

// shift records workers relocated by a hop.
func (c *checker) shift(from, to board.FieldID, workers WorkerMask, missing, present error) error {
	source, err := c.h.Stationed(c.p, from)
	if err != nil {
		return err
	}
	if !source.Contains(workers) {
		return missing
	}
	target, err := c.h.Stationed(c.p, to)
	if err != nil {
		return err
	}
	if target.Intersects(workers) {
		return present
	}
	c.h.recordWorkers(from, to, workers)
	return nil
}

func (c *checker) trade(t Trade) error {
	if c.p.Coins < 1 {
		return ErrNotEnoughCoins
	}
	type stock struct {
		field    board.FieldID
		resource board.Resource
	}
	var needs [2]stock
	for i, gain := range t.Gains {
		if gain.Resource < board.Wood || gain.Resource > board.Food {
			return ErrUnknownAction
		}
		field := c.p.UnitField(gain.Unit)
		if field == board.NoField {
			return ErrUnitNotDeployed
		}
		owner, ok := c.g.Control(field)
		if !ok {
			return ErrNotControlled
		}
		if owner != c.player {
			return ErrEnemyControl
		}
		needs[i] = stock{field: field, resource: gain.Resource}
	}
	if needs[0] == needs[1] {
		if c.g.Board.Field(needs[0].field).Resources.Get(needs[0].resource) < 2 {
			return ErrNotEnoughTradeResources
		}
		return nil
	}
	for _, need := range needs {
		if c.g.Board.Field(need.field).Resources.Get(need.resource) < 1 {
			return ErrNotEnoughTradeResources
		}
	}
	return nil
}

func (c *checker) produce(a Produce) error {
	if !c.p.CanProduce() {
		return ErrCannotProduce
	}
	switch n := len(a.Workers); {
	case n == 0 || n > 3:
		return ErrProduceCount
	case n == 3 && !c.p.Upgrades.IsEvolved(game.UpgradeProduce):
		return ErrProduce3NotEvolved
	}
	seen := make(map[board.FieldID]bool, len(a.Workers))
	for _, w := range a.Workers {
		if !c.p.Workers.IsDeployed(w) {
			return ErrWorkerNotDeployed
		}
		field := c.p.Workers.Fields[w]
		if !c.g.Board.Field(field).Tile.Producible() {
			return ErrUnproducibleTile
		}
		if seen[field] {
			return ErrDuplicateProduceTile
		}
		seen[field] = true
	}
	return nil
}

// checkSecondary validates s for the active player of g, where g already
// reflects the primary action of the given category.
func checkSecondary(g *game.Game, category game.PrimaryAction, s Secondary) error {
	if s == nil {
		return ErrUnknownAction
	}
	p := g.ActivePlayer()
	kind := MapSecondary(s)
	if p.Secondary(category) != kind {
		return ErrNotLinked
	}

	switch s := s.(type) {
	case Upgrade:
		if s.Primary < game.UpgradeMove || s.Primary > game.UpgradeProduce ||
			s.Secondary < game.ActionUpgrade || s.Secondary > game.ActionEnlist {
			return ErrUnknownAction
		}
		if p.Upgrades.IsEvolved(s.Primary) {
			return ErrAlreadyEvolved
		}
		if !p.Upgrades.CanEvolve(s.Secondary) {
			return ErrNoEvolutionsLeft
		}
	case Deploy:
		if s.Mech < game.Mech1 || s.Mech > game.Mech4 {
			return ErrUnknownAction
		}
		if p.Mechs.IsDeployed(s.Mech) {
			return ErrMechDeployed
		}
		if !p.Workers.IsDeployed(s.Worker) {
			return ErrWorkerNotDeployed
		}
	case Build:
		if s.Building < game.Armory || s.Building > game.Mill {
			return ErrUnknownAction
		}
		if p.Buildings.IsBuilt(s.Building) {
			return ErrBuildingBuilt
		}
		if !p.Workers.IsDeployed(s.Worker) {
			return ErrWorkerNotDeployed
		}
		field := p.Workers.Fields[s.Worker]
		if tile := g.Board.Field(field).Tile; tile == board.Lake || tile == board.Home {
			return ErrBuildingTile
		}
		if p.Buildings.On(field) {
			return ErrFieldHasBuilding
		}
	case Enlist:
		if s.Secondary < game.RecruitPopularity || s.Secondary > game.RecruitCoin ||
			s.OneTime < game.RecruitPopularity || s.OneTime > game.RecruitCoin {
			return ErrUnknownAction
		}
		if p.Recruits.HasSecondary(s.Secondary) {
			return ErrSecondaryRecruited
		}
		if p.Recruits.HasOneTime(s.OneTime) {
			return ErrOneTimeRecruited
		}
	}

	if !g.CanAfford(g.Active(), kind) {
		return ErrCannotAffordSecondary
	}
	return nil
}
