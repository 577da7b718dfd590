package turn

import (
	"fmt"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

// Turn validates mask for the active player and applies it. A rejected turn
// leaves the game untouched and returns an error wrapping both
// ErrInvalidAction and the rejection.
func Turn(g *game.Game, mask TurnMask) error {
	if err := Check(g, mask); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	ExecutePrimary(g, mask.Primary())
	if s, ok := mask.Secondary(); ok {
		ExecuteSecondary(g, s)
	}
	g.Turn++
	return nil
}

// Play is Turn on a copy of the game.
func Play(g *game.Game, mask TurnMask) (*game.Game, error) {
	next := g.Copy()
	if err := Turn(next, mask); err != nil {
		return nil, err
	}
	return next, nil
}

// ExecutePrimary applies a validated primary action for the active player.
// Calling it with an action that fails CheckPrimary is a programming error
// and panics. It does not advance the turn; use Turn or Play to hand the turn
// to the next player.
func ExecutePrimary(g *game.Game, a Primary) {
	p := g.ActivePlayer()
	switch a := a.(type) {
	case Move:
		for _, step := range a.Steps {
			executeMovement(g, p, step)
		}
	case Tax:
		if p.Upgrades.IsEvolved(game.UpgradeTax) {
			p.Coins += 2
		} else {
			p.Coins++
		}
	case Trade:
		spendCoin(p)
		for _, gain := range a.Gains {
			f := g.Board.Field(p.UnitField(gain.Unit))
			f.Resources = f.Resources.Add(board.Single(gain.Resource, 1))
		}
		if p.Buildings.IsBuilt(game.Armory) {
			p.Military.Add(1)
		}
	case Promote:
		spendCoin(p)
		if p.Upgrades.IsEvolved(game.UpgradePromote) {
			p.Popularity.Add(2)
		} else {
			p.Popularity.Add(1)
		}
		if p.Buildings.IsBuilt(game.Armory) {
			p.Military.Add(1)
		}
	case Bolster:
		spendCoin(p)
		if p.Upgrades.IsEvolved(game.UpgradeBolster) {
			p.Military.Add(3)
		} else {
			p.Military.Add(2)
		}
		if p.Buildings.IsBuilt(game.Monument) {
			p.Popularity.Add(1)
		}
	case Enforce:
		spendCoin(p)
		if p.Upgrades.IsEvolved(game.UpgradeEnforce) {
			p.Cards += 2
		} else {
			p.Cards++
		}
		if p.Buildings.IsBuilt(game.Monument) {
			p.Popularity.Add(1)
		}
	case Produce:
		executeProduce(g, p, a)
	default:
		panic(fmt.Sprintf("cannot execute primary action %T", a))
	}
}

func spendCoin(p *game.Player) {
	if p.Coins < 1 {
		panic("cannot spend a coin: no coins left")
	}
	p.Coins--
}

func executeMovement(g *game.Game, p *game.Player, m UnitMovement) {
	switch m := m.(type) {
	case CharacterMove:
		for _, hop := range m.Hops {
			to := relocate(g.Board, p.Character, hop.To, hop.Carry)
			p.Character = to
		}
	case WorkerMove:
		for _, hop := range m.Hops {
			to := relocate(g.Board, p.Workers.Fields[m.Worker], hop.To, hop.Carry)
			p.Workers.Fields[m.Worker] = to
		}
	case MechMove:
		for _, hop := range m.Hops {
			from := p.Mechs.Fields[m.Mech]
			to := relocate(g.Board, from, hop.To, hop.Carry)
			for _, w := range hop.Workers.List() {
				if p.Workers.Fields[w] != from {
					panic(fmt.Sprintf("cannot carry %s: not stationed with %s", w, m.Mech))
				}
				p.Workers.Fields[w] = to
			}
			p.Mechs.Fields[m.Mech] = to
		}
	default:
		panic(fmt.Sprintf("cannot execute movement %T", m))
	}
}

// relocate moves carried resources to the hop destination and returns it.
func relocate(b *board.Board, from board.FieldID, pos board.Position, carry board.Resources) board.FieldID {
	to, ok := b.GetField(pos)
	if !ok {
		panic(fmt.Sprintf("cannot move to %s: not a field", pos))
	}
	if carry.IsZero() {
		return to
	}
	src, dst := b.Field(from), b.Field(to)
	src.Resources, ok = src.Resources.Sub(carry)
	if !ok {
		panic(fmt.Sprintf("cannot carry %s from %s", carry, src.Position))
	}
	dst.Resources = dst.Resources.Add(carry)
	return to
}

func executeProduce(g *game.Game, p *game.Player, a Produce) {
	if !p.CanProduce() {
		panic("cannot produce: production penalty cannot be paid")
	}
	// Yields are counted before the penalty and before villages add workers.
	var fields []board.FieldID
	yields := make(map[board.FieldID]int)
	for _, w := range a.Workers {
		field := p.Workers.Fields[w]
		if _, ok := yields[field]; !ok {
			fields = append(fields, field)
		}
		yields[field] = len(p.Workers.On(field))
	}
	// The mill's field produces once more, whether chosen or not.
	if mill := p.Buildings.Fields[game.Mill]; mill != board.NoField {
		if n := len(p.Workers.On(mill)); n > 0 {
			if _, ok := yields[mill]; !ok {
				fields = append(fields, mill)
			}
			yields[mill] += n
		}
	}

	p.ProductionPenalty()
	for _, field := range fields {
		produceOn(g.Board, p, field, yields[field])
	}
}

func produceOn(b *board.Board, p *game.Player, field board.FieldID, n int) {
	f := b.Field(field)
	if r, ok := f.Tile.Resource(); ok {
		f.Resources = f.Resources.Add(board.Single(r, n))
		return
	}
	if f.Tile == board.Village {
		for range n {
			if _, ok := p.Workers.Deploy(field); !ok {
				return
			}
		}
	}
}

// ExecuteSecondary applies a validated secondary action for the active
// player. The category cost is checked once more; an unaffordable action is
// a programming error and panics. Like ExecutePrimary it leaves g.Turn alone.
func ExecuteSecondary(g *game.Game, s Secondary) {
	player := g.Active()
	p := g.ActivePlayer()
	kind := MapSecondary(s)
	if !g.CanAfford(player, kind) {
		panic(fmt.Sprintf("cannot %s: not enough %s", kind, kind.Resource()))
	}

	switch kind {
	case game.ActionUpgrade:
		if p.Recruits.HasSecondary(game.RecruitPower) {
			p.Military.Add(1)
		}
	case game.ActionDeploy:
		if p.Recruits.HasSecondary(game.RecruitCoin) {
			p.Coins++
		}
	case game.ActionBuild:
		if p.Recruits.HasSecondary(game.RecruitPopularity) {
			p.Popularity.Add(1)
		}
	case game.ActionEnlist:
		if p.Recruits.HasSecondary(game.RecruitCard) {
			p.Cards++
		}
	}

	g.Pay(player, kind.Resource(), p.Upgrades.Cost(kind))

	switch s := s.(type) {
	case Upgrade:
		p.Upgrades.Upgrade(s.Primary, s.Secondary)
	case Deploy:
		p.Mechs.Deploy(s.Mech, p.Workers.Fields[s.Worker])
	case Build:
		p.Buildings.Build(s.Building, p.Workers.Fields[s.Worker])
	case Enlist:
		p.Recruits.Enlist(s.Secondary, s.OneTime)
	}

	p.Coins += p.Upgrades.Coins[kind]
}
