package game

import "github.com/dfb159/scythe-bot/board"

// Stars needed to win.
const WinningStars = 6

// Resource is the resource a bottom row action is paid with.
func (a SecondaryAction) Resource() board.Resource {
	switch a {
	case ActionUpgrade:
		return board.Oil
	case ActionDeploy:
		return board.Metal
	case ActionBuild:
		return board.Wood
	default:
		return board.Food
	}
}

type Player struct {
	Name    string
	Faction Faction
	Mat     Mat

	Character  board.FieldID
	Workers    Production
	Mechs      Mechs
	Buildings  Buildings
	Recruits   Recruits
	Upgrades   Upgrades
	Military   Track
	Popularity Track
	Coins      int
	Cards      int
}

func newPlayer(name string, faction Faction, mat Mat, home board.Base) Player {
	p := Player{
		Name:       name,
		Faction:    faction,
		Mat:        mat,
		Character:  home.Field,
		Workers:    newProduction(),
		Mechs:      newMechs(),
		Buildings:  newBuildings(),
		Upgrades:   newUpgrades(mat),
		Military:   Track{Max: MaxMilitary},
		Popularity: Track{Max: MaxPopularity},
		Coins:      mat.Coins,
		Cards:      faction.Cards,
	}
	p.Military.Add(faction.Power)
	p.Popularity.Add(mat.Popularity)
	p.Workers.Deploy(home.Start[0])
	p.Workers.Deploy(home.Start[1])
	return p
}

// Secondary returns the bottom row action linked to a top row action.
func (p *Player) Secondary(a PrimaryAction) SecondaryAction {
	switch a {
	case ActionMove, ActionTax:
		return p.Mat.MoveSecondary
	case ActionTrade, ActionPromote:
		return p.Mat.TradeSecondary
	case ActionBolster, ActionEnforce:
		return p.Mat.BolsterSecondary
	default:
		return p.Mat.ProduceSecondary
	}
}

// CanProduce reports whether the player can pay the production penalty
// for its number of deployed workers.
func (p *Player) CanProduce() bool {
	deployed := p.Workers.Deployed()
	switch {
	case deployed >= 8 && p.Coins <= 0:
		return false
	case deployed >= 6 && p.Popularity.Value <= 0:
		return false
	case deployed >= 4 && p.Military.Value <= 0:
		return false
	}
	return true
}

// ProductionPenalty charges the cost of producing with the current number of
// deployed workers.
func (p *Player) ProductionPenalty() {
	deployed := p.Workers.Deployed()
	if deployed >= 4 {
		p.Military.Sub(1)
	}
	if deployed >= 6 {
		p.Popularity.Sub(1)
	}
	if deployed >= 8 && p.Coins > 0 {
		p.Coins--
	}
}

func (p *Player) Stars() int {
	n := 0
	for _, star := range []bool{p.Upgrades.Star, p.Mechs.Star, p.Buildings.Star, p.Recruits.Star, p.Military.Star, p.Popularity.Star} {
		if star {
			n++
		}
	}
	return n
}

func (p *Player) HasWon() bool {
	return p.Stars() >= WinningStars
}

// UnitField returns the field of a unit, or board.NoField if the unit is
// not on the board.
func (p *Player) UnitField(u UnitRef) board.FieldID {
	switch u.Kind {
	case KindCharacter:
		return p.Character
	case KindWorker:
		if u.Index >= 0 && u.Index < MaxWorkers {
			return p.Workers.Fields[u.Index]
		}
	case KindMech:
		if u.Index >= 0 && u.Index < MaxMechs {
			return p.Mechs.Fields[u.Index]
		}
	case KindBuilding:
		if u.Index >= 0 && u.Index < NumBuildings {
			return p.Buildings.Fields[u.Index]
		}
	}
	return board.NoField
}

// Units lists every unit currently on the board.
func (p *Player) Units() []UnitRef {
	units := []UnitRef{Character()}
	for i := range p.Workers.Fields {
		if p.Workers.IsDeployed(Worker(i)) {
			units = append(units, WorkerUnit(Worker(i)))
		}
	}
	for i := range p.Mechs.Fields {
		if p.Mechs.IsDeployed(Mech(i)) {
			units = append(units, MechUnit(Mech(i)))
		}
	}
	for _, b := range AllBuildings {
		if p.Buildings.IsBuilt(b) {
			units = append(units, BuildingUnit(b))
		}
	}
	return units
}

// Occupies reports whether the character, a worker or a mech stands on
// field. Buildings do not count.
func (p *Player) Occupies(field board.FieldID) bool {
	if field == board.NoField {
		return false
	}
	if p.Character == field {
		return true
	}
	for _, f := range p.Workers.Fields {
		if f == field {
			return true
		}
	}
	for _, f := range p.Mechs.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Tunnel reports whether units of this player may use field as a tunnel.
func (p *Player) Tunnel(f *board.Field) bool {
	return f.Tunnelable || p.Buildings.Fields[Mine] == f.ID
}
