package game

import "github.com/dfb159/scythe-bot/board"

const (
	MaxMilitary   = 16
	MaxPopularity = 18
)

// Track is a bounded counter such as power or popularity. Its star is
// awarded when the counter first reaches the maximum and is never revoked.
type Track struct {
	Value int
	Max   int
	Star  bool
}

func (t *Track) Add(n int) {
	t.Value = min(t.Value+n, t.Max)
	if t.Value >= t.Max {
		t.Star = true
	}
}

func (t *Track) Sub(n int) {
	t.Value = max(t.Value-n, 0)
}

// PopularityMultipliers returns the coin multipliers for stars, controlled
// fields and resource pairs at the given popularity.
func PopularityMultipliers(popularity int) (stars, fields, resources int) {
	switch {
	case popularity < 7:
		return 3, 2, 1
	case popularity < 14:
		return 4, 3, 2
	default:
		return 5, 4, 3
	}
}

// Production tracks where each worker stands. Undeployed slots hold
// board.NoField.
type Production struct {
	Fields [MaxWorkers]board.FieldID
}

func newProduction() Production {
	var p Production
	for i := range p.Fields {
		p.Fields[i] = board.NoField
	}
	return p
}

func (p *Production) IsDeployed(w Worker) bool {
	return w >= 0 && int(w) < MaxWorkers && p.Fields[w] != board.NoField
}

func (p *Production) Deployed() int {
	n := 0
	for _, f := range p.Fields {
		if f != board.NoField {
			n++
		}
	}
	return n
}

// Deploy places the next undeployed worker on field.
func (p *Production) Deploy(field board.FieldID) (Worker, bool) {
	for i, f := range p.Fields {
		if f == board.NoField {
			p.Fields[i] = field
			return Worker(i), true
		}
	}
	return 0, false
}

// On lists the workers standing on field.
func (p *Production) On(field board.FieldID) []Worker {
	var workers []Worker
	for i, f := range p.Fields {
		if f != board.NoField && f == field {
			workers = append(workers, Worker(i))
		}
	}
	return workers
}

type Mechs struct {
	Fields [MaxMechs]board.FieldID
	Star   bool
}

func newMechs() Mechs {
	var m Mechs
	for i := range m.Fields {
		m.Fields[i] = board.NoField
	}
	return m
}

func (m *Mechs) IsDeployed(mech Mech) bool {
	return mech >= 0 && int(mech) < MaxMechs && m.Fields[mech] != board.NoField
}

func (m *Mechs) Deploy(mech Mech, field board.FieldID) {
	m.Fields[mech] = field
	for _, f := range m.Fields {
		if f == board.NoField {
			return
		}
	}
	m.Star = true
}

type Buildings struct {
	Fields [NumBuildings]board.FieldID
	Star   bool
}

func newBuildings() Buildings {
	var b Buildings
	for i := range b.Fields {
		b.Fields[i] = board.NoField
	}
	return b
}

func (b *Buildings) IsBuilt(building Building) bool {
	return building >= 0 && int(building) < NumBuildings && b.Fields[building] != board.NoField
}

func (b *Buildings) Build(building Building, field board.FieldID) {
	b.Fields[building] = field
	for _, f := range b.Fields {
		if f == board.NoField {
			return
		}
	}
	b.Star = true
}

// On reports whether any building stands on field.
func (b *Buildings) On(field board.FieldID) bool {
	for _, f := range b.Fields {
		if f != board.NoField && f == field {
			return true
		}
	}
	return false
}

// Recruits has one secondary and one one-time slot per recruit kind.
type Recruits struct {
	Secondary [4]bool
	OneTime   [4]bool
	Star      bool
}

func (r *Recruits) Enlist(secondary, oneTime Recruit) {
	r.Secondary[secondary] = true
	r.OneTime[oneTime] = true
	for i := range r.Secondary {
		if !r.Secondary[i] || !r.OneTime[i] {
			return
		}
	}
	r.Star = true
}

func (r *Recruits) HasSecondary(recruit Recruit) bool {
	return r.Secondary[recruit]
}

func (r *Recruits) HasOneTime(recruit Recruit) bool {
	return r.OneTime[recruit]
}

// Upgrades records evolved top row actions and the remaining evolutions of
// each bottom row action.
type Upgrades struct {
	Evolved    [6]bool
	Base       [4]int
	Evolutions [4]int
	Coins      [4]int
	Star       bool
}

func newUpgrades(m Mat) Upgrades {
	var u Upgrades
	for _, s := range AllSecondaryActions {
		c := m.cost(s)
		u.Base[s] = c.Cost
		u.Evolutions[s] = c.Evolutions
		u.Coins[s] = c.Coins
	}
	return u
}

func (u *Upgrades) IsEvolved(p PrimaryUpgrade) bool {
	return u.Evolved[p]
}

func (u *Upgrades) CanEvolve(s SecondaryAction) bool {
	return u.Evolutions[s] > 0
}

// Cost is the amount of the category resource a bottom row action needs.
func (u *Upgrades) Cost(s SecondaryAction) int {
	return u.Base[s] + u.Evolutions[s]
}

func (u *Upgrades) Upgrade(p PrimaryUpgrade, s SecondaryAction) {
	u.Evolved[p] = true
	if u.Evolutions[s] > 0 {
		u.Evolutions[s]--
	}
	for _, evolved := range u.Evolved {
		if !evolved {
			return
		}
	}
	u.Star = true
}
