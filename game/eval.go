package game

import "math"

// HeightWeight balances the two positional terms of Evaluate. Fixed so that
// evaluations are reproducible across runs; see Evaluate.
const HeightWeight = 3.0

// Terminal scores. A decided game dominates every positional consideration.
var (
	WonScore  = math.MaxFloat64
	LostScore = -math.MaxFloat64
)

// Evaluate scores a state from the perspective of player p. Terminal states
// are absolute: a game p has won scores WonScore and a game p has lost
// (including losing by having no legal move) scores LostScore. Otherwise the
// score combines two positional terms:
//
//   - proximity: the negated sum of Chebyshev distances over all pairs of
//     one p worker and one opposing worker, rewarding staying close enough
//     to interfere with the opponent;
//   - height: the sum of p's workers' effective heights minus the opposing
//     sum, where a worker's effective height is its cell height plus the
//     mean height of the adjacent cells, rewarding tall, well-supported
//     positions.
//
// The result is proximity + HeightWeight*height. Only the ordering of
// scores is contractual; the exact numbers are an implementation detail.
func Evaluate(s *State, p Player) float64 {
	if s.over {
		if s.winner == p {
			return WonScore
		}
		return LostScore
	}

	o := p.Other()
	proximity := 0.0
	for _, mine := range s.workers[p] {
		for _, theirs := range s.workers[o] {
			proximity -= float64(mine.Distance(theirs))
		}
	}

	height := 0.0
	for _, mine := range s.workers[p] {
		height += s.effectiveHeight(mine)
	}
	for _, theirs := range s.workers[o] {
		height -= s.effectiveHeight(theirs)
	}

	return proximity + HeightWeight*height
}

// effectiveHeight is the worker's cell height plus the average height of its
// neighboring cells. Capped neighbors count as zero: a dome can never be
// climbed, so it provides no support.
func (s *State) effectiveHeight(loc Point) float64 {
	neighbors := loc.Neighbors()
	support := 0.0
	for _, n := range neighbors {
		if !s.board.Capped(n) {
			support += float64(s.board.Height(n))
		}
	}
	return float64(s.board.Height(loc)) + support/float64(len(neighbors))
}
