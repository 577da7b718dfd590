package turn

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dfb159/scythe-bot/board"
	"github.com/dfb159/scythe-bot/game"
)

// TurnMask is the full action a player submits for one turn: a primary
// action, optionally followed by the secondary action linked to it.
type TurnMask interface {
	Primary() Primary
	Secondary() (Secondary, bool)
	fmt.Stringer
}

type PrimaryOnly struct {
	Action Primary
}

type PrimaryAndSecondary struct {
	Action Primary
	Follow Secondary
}

func (m PrimaryOnly) Primary() Primary             { return m.Action }
func (m PrimaryOnly) Secondary() (Secondary, bool) { return nil, false }
func (m PrimaryOnly) String() string               { return m.Action.String() }

func (m PrimaryAndSecondary) Primary() Primary             { return m.Action }
func (m PrimaryAndSecondary) Secondary() (Secondary, bool) { return m.Follow, true }

func (m PrimaryAndSecondary) String() string {
	return m.Action.String() + " + " + m.Follow.String()
}

// Primary is one of Move, Tax, Trade, Promote, Bolster, Enforce or Produce.
type Primary interface {
	isPrimary()
	fmt.Stringer
}

// Move relocates one to three units. Each unit moves at most once by itself.
type Move struct {
	Steps []UnitMovement
}

type Tax struct{}

// TradeUnit names a unit whose field receives a traded resource.
type TradeUnit struct {
	Unit     game.UnitRef
	Resource board.Resource
}

// Trade buys exactly two resources. Both gains may name the same unit.
type Trade struct {
	Gains [2]TradeUnit
}

type Promote struct{}

type Bolster struct{}

type Enforce struct{}

// Produce lets one to three workers produce on their fields.
type Produce struct {
	Workers []game.Worker
}

func (Move) isPrimary()    {}
func (Tax) isPrimary()     {}
func (Trade) isPrimary()   {}
func (Promote) isPrimary() {}
func (Bolster) isPrimary() {}
func (Enforce) isPrimary() {}
func (Produce) isPrimary() {}

func (m Move) String() string {
	steps := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		steps[i] = s.String()
	}
	return "move[" + strings.Join(steps, "; ") + "]"
}

func (Tax) String() string { return "tax" }

func (t Trade) String() string {
	return fmt.Sprintf("trade[%s %s, %s %s]", t.Gains[0].Unit, t.Gains[0].Resource, t.Gains[1].Unit, t.Gains[1].Resource)
}

func (Promote) String() string { return "promote" }
func (Bolster) String() string { return "bolster" }
func (Enforce) String() string { return "enforce" }

func (p Produce) String() string {
	workers := make([]string, len(p.Workers))
	for i, w := range p.Workers {
		workers[i] = w.String()
	}
	return "produce[" + strings.Join(workers, ", ") + "]"
}

// Hop is a single step of a character or worker. Carry is taken from the
// field the hop starts on.
type Hop struct {
	To    board.Position
	Carry board.Resources
}

// MechHop is a single step of a mech, which may also carry workers.
type MechHop struct {
	To      board.Position
	Workers WorkerMask
	Carry   board.Resources
}

// UnitMovement moves one unit by one hop (single) or two hops (double).
type UnitMovement interface {
	Unit() game.UnitRef
	isUnitMovement()
	fmt.Stringer
}

type CharacterMove struct {
	Hops []Hop
}

type WorkerMove struct {
	Worker game.Worker
	Hops   []Hop
}

type MechMove struct {
	Mech game.Mech
	Hops []MechHop
}

func (CharacterMove) isUnitMovement() {}
func (WorkerMove) isUnitMovement()    {}
func (MechMove) isUnitMovement()      {}

func (CharacterMove) Unit() game.UnitRef { return game.Character() }
func (m WorkerMove) Unit() game.UnitRef  { return game.WorkerUnit(m.Worker) }
func (m MechMove) Unit() game.UnitRef    { return game.MechUnit(m.Mech) }

func (m CharacterMove) String() string { return "character" + hopsString(m.Hops) }
func (m WorkerMove) String() string    { return m.Worker.String() + hopsString(m.Hops) }

func (m MechMove) String() string {
	var b strings.Builder
	b.WriteString(m.Mech.String())
	for _, h := range m.Hops {
		fmt.Fprintf(&b, " -> %s", h.To)
		if h.Workers != 0 {
			fmt.Fprintf(&b, " with %s", h.Workers)
		}
		if !h.Carry.IsZero() {
			fmt.Fprintf(&b, " carrying %s", h.Carry)
		}
	}
	return b.String()
}

func hopsString(hops []Hop) string {
	var b strings.Builder
	for _, h := range hops {
		fmt.Fprintf(&b, " -> %s", h.To)
		if !h.Carry.IsZero() {
			fmt.Fprintf(&b, " carrying %s", h.Carry)
		}
	}
	return b.String()
}

// Single and Double build movement paths.
func Single(to board.Position, carry board.Resources) []Hop {
	return []Hop{{To: to, Carry: carry}}
}

func Double(first board.Position, firstCarry board.Resources, second board.Position, secondCarry board.Resources) []Hop {
	return []Hop{{To: first, Carry: firstCarry}, {To: second, Carry: secondCarry}}
}

// Secondary is one of Upgrade, Deploy, Build or Enlist.
type Secondary interface {
	isSecondary()
	fmt.Stringer
}

type Upgrade struct {
	Primary   game.PrimaryUpgrade
	Secondary game.SecondaryAction
}

// Deploy places a mech on the field of the named worker.
type Deploy struct {
	Mech   game.Mech
	Worker game.Worker
}

// Build places a building on the field of the named worker. For the mill
// that field is also its production field.
type Build struct {
	Building game.Building
	Worker   game.Worker
}

type Enlist struct {
	Secondary game.Recruit
	OneTime   game.Recruit
}

func (Upgrade) isSecondary() {}
func (Deploy) isSecondary()  {}
func (Build) isSecondary()   {}
func (Enlist) isSecondary()  {}

func (u Upgrade) String() string { return fmt.Sprintf("upgrade[%s, %s]", u.Primary, u.Secondary) }
func (d Deploy) String() string  { return fmt.Sprintf("deploy[%s at %s]", d.Mech, d.Worker) }
func (b Build) String() string   { return fmt.Sprintf("build[%s at %s]", b.Building, b.Worker) }
func (e Enlist) String() string  { return fmt.Sprintf("enlist[%s, %s]", e.Secondary, e.OneTime) }

// MapPrimary returns the category of a primary action.
func MapPrimary(p Primary) game.PrimaryAction {
	switch p.(type) {
	case Move:
		return game.ActionMove
	case Tax:
		return game.ActionTax
	case Trade:
		return game.ActionTrade
	case Promote:
		return game.ActionPromote
	case Bolster:
		return game.ActionBolster
	case Enforce:
		return game.ActionEnforce
	case Produce:
		return game.ActionProduce
	}
	panic(fmt.Sprintf("unknown primary action %T", p))
}

// MapSecondary returns the category of a secondary action.
func MapSecondary(s Secondary) game.SecondaryAction {
	switch s.(type) {
	case Upgrade:
		return game.ActionUpgrade
	case Deploy:
		return game.ActionDeploy
	case Build:
		return game.ActionBuild
	case Enlist:
		return game.ActionEnlist
	}
	panic(fmt.Sprintf("unknown secondary action %T", s))
}

// WorkerMask is a set of workers.
type WorkerMask uint8

const (
	W1 WorkerMask = 1 << iota
	W2
	W3
	W4
	W5
	W6
	W7
	W8
)

const AllWorkers WorkerMask = 0xFF

func WorkerBit(w game.Worker) WorkerMask {
	return 1 << uint(w)
}

// Workers builds a mask from a list of workers.
func Workers(workers ...game.Worker) WorkerMask {
	var m WorkerMask
	for _, w := range workers {
		m |= WorkerBit(w)
	}
	return m
}

func (m WorkerMask) Contains(other WorkerMask) bool   { return m&other == other }
func (m WorkerMask) Intersects(other WorkerMask) bool { return m&other != 0 }
func (m WorkerMask) Union(other WorkerMask) WorkerMask {
	return m | other
}
func (m WorkerMask) Difference(other WorkerMask) WorkerMask {
	return m &^ other
}
func (m WorkerMask) Has(w game.Worker) bool { return m&WorkerBit(w) != 0 }
func (m WorkerMask) Len() int              { return bits.OnesCount8(uint8(m)) }

// List returns the workers of the mask in ascending order.
func (m WorkerMask) List() []game.Worker {
	var workers []game.Worker
	for w := game.Worker(0); w < game.MaxWorkers; w++ {
		if m.Has(w) {
			workers = append(workers, w)
		}
	}
	return workers
}

func (m WorkerMask) String() string {
	names := make([]string, 0, m.Len())
	for _, w := range m.List() {
		names = append(names, w.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// MechMask is a set of mechs.
type MechMask uint8

const (
	M1 MechMask = 1 << iota
	M2
	M3
	M4
)

func MechBit(m game.Mech) MechMask {
	return 1 << uint(m)
}

func (m MechMask) Contains(other MechMask) bool   { return m&other == other }
func (m MechMask) Intersects(other MechMask) bool { return m&other != 0 }
func (m MechMask) Union(other MechMask) MechMask  { return m | other }
func (m MechMask) Difference(other MechMask) MechMask {
	return m &^ other
}
func (m MechMask) Has(mech game.Mech) bool { return m&MechBit(mech) != 0 }
