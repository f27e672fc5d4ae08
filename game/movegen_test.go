package game

/*
Move generator under test:
- full enumeration on the standard opening, hand-counted
- joint move/build validation: every generated build is itself legal
- winning moves carry the no-build sentinel
- ApplyMove branches on a copy and never mutates the source state
*/

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesOpeningCount(t *testing.T) {
	// Empty board, P1 at (0,0) and (0,1), P2 at (4,4) and (4,3).
	//
	// Worker 0 at (0,0): destinations (1,0) and (1,1).
	//   (1,0): builds (0,0) (1,1) (2,0) (2,1)                    -> 4
	//   (1,1): builds (0,0) (0,2) (1,0) (1,2) (2,0) (2,1) (2,2)  -> 7
	// Worker 1 at (0,1): destinations (0,2) (1,0) (1,1) (1,2).
	//   (0,2): builds (0,1) (0,3) (1,1) (1,2) (1,3)              -> 5
	//   (1,0): builds (0,1) (1,1) (2,0) (2,1)                    -> 4
	//   (1,1): builds (0,1) (0,2) (1,0) (1,2) (2,0) (2,1) (2,2)  -> 7
	//   (1,2): all eight neighbors                               -> 8
	s := standardOpening(t)
	moves := s.LegalMoves()
	require.Len(t, moves, 35)

	perDest := map[Point]int{}
	for _, m := range moves {
		require.False(t, m.Wins(), "no winning moves exist on a flat board")
		perDest[m.To]++
	}
	require.Equal(t, 4+4, perDest[Point{1, 0}], "both workers can reach (1,0)")
	require.Equal(t, 7+7, perDest[Point{1, 1}])
	require.Equal(t, 5, perDest[Point{0, 2}])
	require.Equal(t, 8, perDest[Point{1, 2}])
}

func TestLegalMovesAreIndividuallyLegal(t *testing.T) {
	s := standardOpening(t)
	for _, m := range s.LegalMoves() {
		c := s.Copy()
		require.NoError(t, c.Apply(Action{Type: SelectWorker, Worker: m.Worker}), "move %v", m)
		require.NoError(t, c.Apply(Action{Type: MoveTo, Target: m.To}), "move %v", m)
		if !m.Wins() {
			require.NoError(t, c.Apply(Action{Type: BuildAt, Target: m.Build}), "move %v", m)
		}
	}
}

func TestLegalMovesWinningSentinel(t *testing.T) {
	var b Board
	raise(&b, Point{0, 0}, 2)
	raise(&b, Point{1, 1}, 3)
	s := position(t, b,
		[2][WorkersPerPlayer]Point{{{0, 0}, {4, 0}}, {{4, 4}, {4, 3}}},
		PlayerOne)

	var wins []Move
	for _, m := range s.LegalMoves() {
		if m.Wins() {
			wins = append(wins, m)
		}
	}
	require.Len(t, wins, 1)
	require.Equal(t, Move{Worker: 0, To: Point{1, 1}, Build: NoPoint}, wins[0])
}

func TestLegalMovesOnlyWhenSelecting(t *testing.T) {
	s := standardOpening(t)
	require.NoError(t, s.Apply(Action{Type: SelectWorker, Worker: 0}))
	require.Nil(t, s.LegalMoves(), "mid-turn states are not search units")
}

func TestApplyMove(t *testing.T) {
	t.Run("applies worker, destination and build on a copy", func(t *testing.T) {
		s := standardOpening(t)
		before := s.Snapshot()

		next := s.ApplyMove(Move{Worker: 0, To: Point{1, 1}, Build: Point{2, 2}})

		require.Equal(t, before, s.Snapshot(), "the source state must not change")
		require.Equal(t, [WorkersPerPlayer]Point{{1, 1}, {0, 1}}, next.Workers(PlayerOne))
		require.Equal(t, 1, next.Board().Height(Point{2, 2}))
		require.Equal(t, PlayerTwo, next.Current())
		require.Equal(t, SelectingWorker, next.Phase())
	})

	t.Run("a winning move ends the game without building", func(t *testing.T) {
		var b Board
		raise(&b, Point{0, 0}, 2)
		raise(&b, Point{1, 1}, 3)
		s := position(t, b,
			[2][WorkersPerPlayer]Point{{{0, 0}, {4, 0}}, {{4, 4}, {4, 3}}},
			PlayerOne)

		next := s.ApplyMove(Move{Worker: 0, To: Point{1, 1}, Build: NoPoint})

		require.True(t, next.Over())
		winner, _ := next.Winner()
		require.Equal(t, PlayerOne, winner)
		require.Equal(t, MaxHeight, next.Board().Height(Point{1, 1}), "no build happened")
	})

	t.Run("regenerates moves fresh on the resulting state", func(t *testing.T) {
		s := standardOpening(t)
		next := s.ApplyMove(s.LegalMoves()[0])
		require.NotEqual(t, s.Current(), next.Current())
		require.NotEmpty(t, next.LegalMoves())
	})
}
