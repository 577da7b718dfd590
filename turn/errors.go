package turn

import "errors"

// Kind groups rejection reasons.
type Kind int

const (
	Affordability Kind = iota
	Movement
	Ledger
	Structural
)

func (k Kind) String() string {
	switch k {
	case Affordability:
		return "affordability"
	case Movement:
		return "movement"
	case Ledger:
		return "ledger"
	case Structural:
		return "structural"
	}
	return "unknown"
}

// Rejection is the reason a turn is illegal. Every reason is a package level
// value, so callers can match them with errors.Is.
type Rejection struct {
	Kind   Kind
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

func reject(kind Kind, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}

// ErrInvalidAction is returned by Turn and Play when a turn is rejected.
var ErrInvalidAction = errors.New("invalid action")

var (
	ErrNotEnoughCoins          = reject(Affordability, "not enough coins")
	ErrCannotProduce           = reject(Affordability, "cannot pay the production penalty")
	ErrNotEnoughTradeResources = reject(Affordability, "not enough resources to trade")
	ErrCannotAffordSecondary   = reject(Affordability, "not enough resources for the secondary action")
)

var (
	ErrCharacterMoved  = reject(Movement, "cannot move the character multiple times in one turn")
	ErrWorkerMoved     = reject(Movement, "cannot move the same worker multiple times in one turn")
	ErrMechMoved       = reject(Movement, "cannot move the same mech multiple times in one turn")
	ErrSameField       = reject(Movement, "unit must move to a different field")
	ErrNotAdjacent     = reject(Movement, "target field is not adjacent")
	ErrRiver           = reject(Movement, "cannot cross a river")
	ErrImpassable      = reject(Movement, "cannot enter lakes or home bases")
	ErrOccupied        = reject(Movement, "target field is occupied by an enemy")
	ErrSourceMissing   = reject(Movement, "source field does not have all the required workers stationed")
	ErrTargetHasWorker = reject(Movement, "target field already has some required workers stationed")
)

var (
	ErrResourceHistoryNegative = reject(Ledger, "resource history is negative")
	ErrNotEnoughToCarry        = reject(Ledger, "not enough resources to take on this move")
	ErrWorkersNotStationed     = reject(Ledger, "required workers are not stationed at the field")
	ErrWorkersAlreadyStationed = reject(Ledger, "required workers are already stationed at the field")
)

var (
	ErrUnknownAction        = reject(Structural, "unknown action")
	ErrStepCount            = reject(Structural, "a move needs one to three steps")
	ErrMove3NotEvolved      = reject(Structural, "move3 is not evolved")
	ErrHopCount             = reject(Structural, "a unit moves one or two hops")
	ErrNegativeCarry        = reject(Structural, "cannot carry a negative amount")
	ErrInvalidTarget        = reject(Structural, "target position is not a valid field")
	ErrWorkerNotDeployed    = reject(Structural, "worker is not deployed")
	ErrMechNotDeployed      = reject(Structural, "mech is not deployed")
	ErrUnitNotDeployed      = reject(Structural, "unit is not deployed")
	ErrNotControlled        = reject(Structural, "field is not controlled")
	ErrEnemyControl         = reject(Structural, "field is controlled by enemy")
	ErrProduceCount         = reject(Structural, "produce needs one to three workers")
	ErrProduce3NotEvolved   = reject(Structural, "produce3 is not evolved")
	ErrUnproducibleTile     = reject(Structural, "cannot produce on unproducible tiles")
	ErrDuplicateProduceTile = reject(Structural, "cannot produce on the same tile multiple times")
	ErrNotLinked            = reject(Structural, "secondary action is not linked to the primary action")
	ErrAlreadyEvolved       = reject(Structural, "primary action is already evolved")
	ErrNoEvolutionsLeft     = reject(Structural, "no evolutions left for the secondary action")
	ErrMechDeployed         = reject(Structural, "mech is already deployed")
	ErrBuildingBuilt        = reject(Structural, "building is already built")
	ErrFieldHasBuilding     = reject(Structural, "field already has a building")
	ErrBuildingTile         = reject(Structural, "cannot build on this tile")
	ErrSecondaryRecruited   = reject(Structural, "secondary recruit is already enlisted")
	ErrOneTimeRecruited     = reject(Structural, "one-time recruit is already enlisted")
)
