package game

import "errors"

// ActionType tags the sub-decision an Action carries.
type ActionType int

const (
	// PlaceWorker puts one of the active player's workers on Target during
	// setup.
	PlaceWorker ActionType = iota
	// SelectWorker picks the active player's worker (by index) to move this
	// turn.
	SelectWorker
	// MoveTo moves the selected worker to Target.
	MoveTo
	// BuildAt builds one level (or a dome) at Target.
	BuildAt
)

func (t ActionType) String() string {
	switch t {
	case PlaceWorker:
		return "PlaceWorker"
	case SelectWorker:
		return "SelectWorker"
	case MoveTo:
		return "MoveTo"
	case BuildAt:
		return "BuildAt"
	default:
		return "Unknown"
	}
}

// Action is one sub-decision of a turn. Actions are transient: only their
// effect on the State persists.
type Action struct {
	Type   ActionType
	Worker int   // SelectWorker only
	Target Point // PlaceWorker, MoveTo and BuildAt
}

// Validation failures reported by Apply. A rejected action never mutates the
// State; callers match with errors.Is.
var (
	// ErrInvalidPlacement rejects a setup placement that is out of bounds or
	// on an occupied cell.
	ErrInvalidPlacement = errors.New("invalid placement")
	// ErrInvalidSelection rejects selecting a worker that does not belong to
	// the active player or has no legal destination.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInvalidDestination rejects a move that violates adjacency,
	// height-delta, occupancy or cap constraints.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrInvalidBuild rejects a build that violates adjacency, occupancy or
	// cap constraints.
	ErrInvalidBuild = errors.New("invalid build")
	// ErrOutOfPhase rejects an action type that does not match the phase.
	ErrOutOfPhase = errors.New("action out of phase")
	// ErrGameAlreadyOver rejects any action after a terminal state.
	ErrGameAlreadyOver = errors.New("game already over")
)
