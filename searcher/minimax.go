// Package searcher implements the computer opponents: a depth-bounded
// minimax search over full turns and a parallel UCT (Monte Carlo tree
// search). Both operate on copies of the game state and never mutate the
// position they are asked to search.
package searcher

import (
	"math"
	"sync"

	"santorini/game"
)

// ChooseMove returns the move for the active player that maximizes the
// evaluation after depth plies of alternating play, assuming the opponent
// minimizes it. Depth counts full turns, not sub-actions. When several moves
// tie, the first one in move-generation order wins, so results are
// deterministic per position.
//
// ok is false when the active player has no legal move; that mirrors the
// rules engine's own terminal detection and is an outcome, not an error.
func ChooseMove(state *game.State, depth int) (move game.Move, ok bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}

	// Root branches are independent: each one searches its own copy of the
	// state, so siblings can run concurrently without locks.
	root := state.Current()
	scores := make([]float64, len(moves))
	var wg sync.WaitGroup
	for i, m := range moves {
		i, m := i, m
		wg.Add(1)
		go func() {
			defer wg.Done()
			scores[i] = minimax(state.ApplyMove(m), depth-1, root)
		}()
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best], true
}

// minimax scores a state from the root player's perspective. The root
// player's layers maximize, the opponent's minimize; terminal states and
// depth zero evaluate directly.
func minimax(s *game.State, depth int, root game.Player) float64 {
	if depth <= 0 || s.Over() {
		return game.Evaluate(s, root)
	}
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return game.Evaluate(s, root)
	}

	if s.Current() == root {
		best := math.Inf(-1)
		for _, m := range moves {
			if v := minimax(s.ApplyMove(m), depth-1, root); v > best {
				best = v
			}
			if best == game.WonScore { // nothing beats a forced win
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		if v := minimax(s.ApplyMove(m), depth-1, root); v < best {
			best = v
		}
		if best == game.LostScore {
			break
		}
	}
	return best
}
