package game

import "fmt"

// Move is one complete legal turn: which worker moves, where it moves, and
// where it builds. The search layers treat it as atomic even though the
// rules engine processes it as three sequential actions.
type Move struct {
	Worker int
	To     Point
	Build  Point // NoPoint when the move wins by reaching the top
}

// Wins reports whether the move ends the game by stepping onto the top
// level, in which case no build happens.
func (m Move) Wins() bool {
	return m.Build == NoPoint
}

func (m Move) String() string {
	if m.Wins() {
		return fmt.Sprintf("worker %d -> %v (wins)", m.Worker, m.To)
	}
	return fmt.Sprintf("worker %d -> %v, build %v", m.Worker, m.To, m.Build)
}

// LegalMoves enumerates every legal full turn for the active player:
// destinations obeying the movement rules, each paired with every legal
// build from the destination. Winning moves carry no build site, since the
// game ends before one happens. The slice is rebuilt on every call and its
// order, while deterministic, is not part of the contract.
//
// At most 2 workers x 8 destinations x 8 builds = 128 raw combinations exist
// before filtering. A nil result on a live SelectingWorker state means the
// active player is blocked.
func (s *State) LegalMoves() []Move {
	if s.over || s.phase != SelectingWorker {
		return nil
	}

	var moves []Move
	for w := 0; w < WorkersPerPlayer; w++ {
		from := s.workers[s.current][w]
		for _, dest := range s.legalDestinations(from) {
			if s.board.Height(dest) == MaxHeight {
				moves = append(moves, Move{Worker: w, To: dest, Build: NoPoint})
				continue
			}
			for _, build := range dest.Neighbors() {
				// The vacated cell is a legal build site, so occupancy is
				// checked as if the worker already stands on dest. dest
				// itself is never a candidate: it is not its own neighbor.
				if build != from && s.Occupied(build) {
					continue
				}
				if s.board.Capped(build) {
					continue
				}
				moves = append(moves, Move{Worker: w, To: dest, Build: build})
			}
		}
	}
	return moves
}

// ApplyMove plays one full legal turn on a copy of the state and returns the
// copy; the receiver is never mutated, which keeps concurrent search
// branches independent. The move must come from LegalMoves on this state.
func (s *State) ApplyMove(m Move) *State {
	if s.over || s.phase != SelectingWorker {
		panic(fmt.Sprintf("ApplyMove in phase %v", s.phase))
	}

	c := s.Copy()
	c.workers[c.current][m.Worker] = m.To
	if c.board.Height(m.To) == MaxHeight {
		c.finish(c.current, false)
		return c
	}
	c.board.Build(m.Build)
	c.current = c.current.Other()
	c.beginTurn()
	return c
}
