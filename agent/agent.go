// Package agent wraps the searchers behind a single move-picking interface
// so the engine, the terminal front end and the arena can drive any
// opponent the same way.
package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"santorini/game"
	"santorini/searcher"
)

// An Agent picks a full turn for the active player of the given state. ok
// is false when the player has no legal move, which the rules treat as a
// loss for that player.
type Agent interface {
	FindMove(state *game.State) (move game.Move, ok bool)
}

// Random picks uniformly among the legal moves. It is the weakest opponent
// and the baseline the others are rated against.
type Random struct {
	rng *rand.Rand
}

func NewRandom() *Random {
	return NewRandomSeeded(uint64(time.Now().UnixNano()))
}

func NewRandomSeeded(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state *game.State) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}

// Heuristic searches a fixed number of turns ahead with minimax over the
// positional evaluation.
type Heuristic struct {
	depth int
}

func NewHeuristic(depth int) *Heuristic {
	return &Heuristic{depth: depth}
}

func (h *Heuristic) FindMove(state *game.State) (game.Move, bool) {
	return searcher.ChooseMove(state, h.depth)
}

// MCTS runs a Monte Carlo tree search per move.
type MCTS struct {
	uct *searcher.UCT
}

func NewMCTS(options ...searcher.Option) *MCTS {
	return &MCTS{uct: searcher.NewUCT(options...)}
}

func (m *MCTS) FindMove(state *game.State) (game.Move, bool) {
	return m.uct.FindNextMove(state)
}
