package game

import "fmt"

// Apply runs the turn state machine on one action. Every phase/action pairing
// is handled: a mismatched action type is rejected with ErrOutOfPhase and any
// action after the game ends with ErrGameAlreadyOver. A rejected action
// leaves the State exactly as it was.
func (s *State) Apply(a Action) error {
	if s.over {
		return ErrGameAlreadyOver
	}
	switch s.phase {
	case PlacingWorkers:
		if a.Type != PlaceWorker {
			return fmt.Errorf("%w: %s during %s", ErrOutOfPhase, a.Type, s.phase)
		}
		return s.place(a.Target)
	case SelectingWorker:
		if a.Type != SelectWorker {
			return fmt.Errorf("%w: %s during %s", ErrOutOfPhase, a.Type, s.phase)
		}
		return s.selectWorker(a.Worker)
	case ChoosingDestination:
		if a.Type != MoveTo {
			return fmt.Errorf("%w: %s during %s", ErrOutOfPhase, a.Type, s.phase)
		}
		return s.moveTo(a.Target)
	case ChoosingBuildSite:
		if a.Type != BuildAt {
			return fmt.Errorf("%w: %s during %s", ErrOutOfPhase, a.Type, s.phase)
		}
		return s.buildAt(a.Target)
	default:
		panic(fmt.Sprintf("unknown phase %v", s.phase))
	}
}

// place puts the active player's next worker on loc. Setup only checks
// bounds and uniqueness; movement and build rules do not apply yet.
func (s *State) place(loc Point) error {
	if !loc.InBounds() {
		return fmt.Errorf("%w: %v is out of bounds", ErrInvalidPlacement, loc)
	}
	if s.Occupied(loc) {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidPlacement, loc)
	}

	s.workers[s.current][s.placed[s.current]] = loc
	s.placed[s.current]++

	if s.placed[PlayerOne] == WorkersPerPlayer && s.placed[PlayerTwo] == WorkersPerPlayer {
		s.current = PlayerOne
		s.phase = SelectingWorker
		s.beginTurn()
		return nil
	}
	// Players alternate single placements: P1, P2, P1, P2.
	s.current = s.current.Other()
	return nil
}

// selectWorker picks which of the active player's workers moves this turn.
func (s *State) selectWorker(worker int) error {
	if worker < 0 || worker >= WorkersPerPlayer {
		return fmt.Errorf("%w: worker %d does not belong to %s", ErrInvalidSelection, worker, s.current)
	}
	if len(s.legalDestinations(s.workers[s.current][worker])) == 0 {
		return fmt.Errorf("%w: worker %d has no legal destination", ErrInvalidSelection, worker)
	}
	s.selected = worker
	s.phase = ChoosingDestination
	return nil
}

// moveTo moves the selected worker. Reaching the top level wins outright and
// skips the build phase.
func (s *State) moveTo(dest Point) error {
	from := s.workers[s.current][s.selected]
	if err := s.checkDestination(from, dest); err != nil {
		return err
	}

	s.workers[s.current][s.selected] = dest
	if s.board.Height(dest) == MaxHeight {
		s.finish(s.current, false)
		return nil
	}
	s.moved = dest
	s.phase = ChoosingBuildSite
	return nil
}

// buildAt builds at loc from this turn's destination, then passes the turn.
func (s *State) buildAt(loc Point) error {
	if !loc.InBounds() || s.moved.Distance(loc) != 1 {
		return fmt.Errorf("%w: %v is not adjacent to %v", ErrInvalidBuild, loc, s.moved)
	}
	if s.Occupied(loc) {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidBuild, loc)
	}
	if s.board.Capped(loc) {
		return fmt.Errorf("%w: %v is capped", ErrInvalidBuild, loc)
	}

	s.board.Build(loc)
	s.selected = -1
	s.moved = NoPoint
	s.current = s.current.Other()
	s.phase = SelectingWorker
	s.beginTurn()
	return nil
}

// beginTurn runs the start-of-turn mobility check: a player with no legal
// destination for either worker loses immediately.
func (s *State) beginTurn() {
	for w := 0; w < WorkersPerPlayer; w++ {
		if len(s.legalDestinations(s.workers[s.current][w])) > 0 {
			return
		}
	}
	s.finish(s.current.Other(), true)
}

// finish moves the state machine to its terminal phase.
func (s *State) finish(winner Player, blocked bool) {
	s.winner = winner
	s.blocked = blocked
	s.over = true
	s.phase = GameOver
	s.selected = -1
	s.moved = NoPoint
}

// checkDestination validates one move target against the adjacency,
// occupancy, cap and height-delta rules.
func (s *State) checkDestination(from, dest Point) error {
	if !dest.InBounds() || from.Distance(dest) != 1 {
		return fmt.Errorf("%w: %v is not adjacent to %v", ErrInvalidDestination, dest, from)
	}
	if s.Occupied(dest) {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidDestination, dest)
	}
	if s.board.Capped(dest) {
		return fmt.Errorf("%w: %v is capped", ErrInvalidDestination, dest)
	}
	if s.board.Height(dest)-s.board.Height(from) > 1 {
		return fmt.Errorf("%w: %v is too high to climb from %v", ErrInvalidDestination, dest, from)
	}
	return nil
}

// legalDestinations lists the cells the worker at from may move to.
func (s *State) legalDestinations(from Point) []Point {
	var dests []Point
	for _, n := range from.Neighbors() {
		if s.checkDestination(from, n) == nil {
			dests = append(dests, n)
		}
	}
	return dests
}

// LegalDestinations lists the legal move targets for the active player's
// worker. Front ends use this for highlighting and for the selection rule:
// a worker with no destinations cannot be selected.
func (s *State) LegalDestinations(worker int) []Point {
	if worker < 0 || worker >= WorkersPerPlayer {
		return nil
	}
	return s.legalDestinations(s.workers[s.current][worker])
}

// LegalBuilds lists the legal build sites for this turn's moved worker.
// Only meaningful during ChoosingBuildSite.
func (s *State) LegalBuilds() []Point {
	if s.phase != ChoosingBuildSite {
		return nil
	}
	var builds []Point
	for _, n := range s.moved.Neighbors() {
		if !s.Occupied(n) && !s.board.Capped(n) {
			builds = append(builds, n)
		}
	}
	return builds
}
