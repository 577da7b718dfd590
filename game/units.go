package game

import "fmt"

const (
	MaxWorkers   = 8
	MaxMechs     = 4
	NumBuildings = 4
)

type Worker int

const (
	Worker1 Worker = iota
	Worker2
	Worker3
	Worker4
	Worker5
	Worker6
	Worker7
	Worker8
)

func (w Worker) String() string {
	return fmt.Sprintf("worker%d", int(w)+1)
}

type Mech int

const (
	Mech1 Mech = iota
	Mech2
	Mech3
	Mech4
)

func (m Mech) String() string {
	return fmt.Sprintf("mech%d", int(m)+1)
}

type Building int

const (
	Armory Building = iota
	Monument
	Mine
	Mill
)

var AllBuildings = [NumBuildings]Building{Armory, Monument, Mine, Mill}

func (b Building) String() string {
	switch b {
	case Armory:
		return "armory"
	case Monument:
		return "monument"
	case Mine:
		return "mine"
	case Mill:
		return "mill"
	}
	return fmt.Sprintf("building(%d)", int(b))
}

type Recruit int

const (
	RecruitPopularity Recruit = iota
	RecruitPower
	RecruitCard
	RecruitCoin
)

var AllRecruits = [4]Recruit{RecruitPopularity, RecruitPower, RecruitCard, RecruitCoin}

func (r Recruit) String() string {
	switch r {
	case RecruitPopularity:
		return "popularity"
	case RecruitPower:
		return "power"
	case RecruitCard:
		return "card"
	case RecruitCoin:
		return "coin"
	}
	return fmt.Sprintf("recruit(%d)", int(r))
}

// PrimaryAction is the category of a top row action.
type PrimaryAction int

const (
	ActionMove PrimaryAction = iota
	ActionTax
	ActionTrade
	ActionPromote
	ActionBolster
	ActionEnforce
	ActionProduce
)

func (a PrimaryAction) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionTax:
		return "tax"
	case ActionTrade:
		return "trade"
	case ActionPromote:
		return "promote"
	case ActionBolster:
		return "bolster"
	case ActionEnforce:
		return "enforce"
	case ActionProduce:
		return "produce"
	}
	return fmt.Sprintf("primary(%d)", int(a))
}

// SecondaryAction is the category of a bottom row action.
type SecondaryAction int

const (
	ActionUpgrade SecondaryAction = iota
	ActionDeploy
	ActionBuild
	ActionEnlist
)

var AllSecondaryActions = [4]SecondaryAction{ActionUpgrade, ActionDeploy, ActionBuild, ActionEnlist}

func (a SecondaryAction) String() string {
	switch a {
	case ActionUpgrade:
		return "upgrade"
	case ActionDeploy:
		return "deploy"
	case ActionBuild:
		return "build"
	case ActionEnlist:
		return "enlist"
	}
	return fmt.Sprintf("secondary(%d)", int(a))
}

// PrimaryUpgrade names a top row action that an upgrade can evolve.
type PrimaryUpgrade int

const (
	UpgradeMove PrimaryUpgrade = iota
	UpgradeTax
	UpgradePromote
	UpgradeBolster
	UpgradeEnforce
	UpgradeProduce
)

var AllPrimaryUpgrades = [6]PrimaryUpgrade{UpgradeMove, UpgradeTax, UpgradePromote, UpgradeBolster, UpgradeEnforce, UpgradeProduce}

func (u PrimaryUpgrade) String() string {
	switch u {
	case UpgradeMove:
		return "move"
	case UpgradeTax:
		return "tax"
	case UpgradePromote:
		return "promote"
	case UpgradeBolster:
		return "bolster"
	case UpgradeEnforce:
		return "enforce"
	case UpgradeProduce:
		return "produce"
	}
	return fmt.Sprintf("upgrade(%d)", int(u))
}

type UnitKind int

const (
	KindCharacter UnitKind = iota
	KindWorker
	KindMech
	KindBuilding
)

// UnitRef points at one of a player's units.
type UnitRef struct {
	Kind  UnitKind
	Index int
}

func Character() UnitRef             { return UnitRef{Kind: KindCharacter} }
func WorkerUnit(w Worker) UnitRef     { return UnitRef{Kind: KindWorker, Index: int(w)} }
func MechUnit(m Mech) UnitRef         { return UnitRef{Kind: KindMech, Index: int(m)} }
func BuildingUnit(b Building) UnitRef { return UnitRef{Kind: KindBuilding, Index: int(b)} }

func (u UnitRef) String() string {
	switch u.Kind {
	case KindCharacter:
		return "character"
	case KindWorker:
		return Worker(u.Index).String()
	case KindMech:
		return Mech(u.Index).String()
	case KindBuilding:
		return Building(u.Index).String()
	}
	return fmt.Sprintf("unit(%d,%d)", int(u.Kind), u.Index)
}
