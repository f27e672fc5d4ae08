package searcher

/*
Minimax under test:
- depth one already takes an immediate win
- depth two defends a one-move threat by doming the winning square
- a player with no legal move gets ok=false
- repeated searches of the same position agree (first-in-order tie break)
*/

import (
	"testing"

	"github.com/stretchr/testify/require"

	"santorini/game"
)

func raise(b *game.Board, p game.Point, height int) {
	for i := 0; i < height; i++ {
		b.Build(p)
	}
}

func capCell(b *game.Board, p game.Point) {
	for i := 0; i < game.MaxHeight+1; i++ {
		b.Build(p)
	}
}

func position(t *testing.T, b game.Board, workers [2][game.WorkersPerPlayer]game.Point, current game.Player) *game.State {
	t.Helper()
	s, err := game.NewStateFromPosition(b, workers, current)
	require.NoError(t, err)
	return s
}

// winInOne: worker 0 of the active player stands on height two next to the
// only height-three cell on the board.
func winInOne(t *testing.T) *game.State {
	t.Helper()
	var b game.Board
	raise(&b, game.Point{Row: 0, Col: 0}, 2)
	raise(&b, game.Point{Row: 1, Col: 1}, 3)
	return position(t, b,
		[2][game.WorkersPerPlayer]game.Point{
			{{Row: 0, Col: 0}, {Row: 4, Col: 0}},
			{{Row: 4, Col: 4}, {Row: 4, Col: 3}},
		},
		game.PlayerOne)
}

// threatened: player two stands on height two next to an uncapped
// height-three tower and wins next turn unless player one domes it.
func threatened(t *testing.T) *game.State {
	t.Helper()
	var b game.Board
	raise(&b, game.Point{Row: 1, Col: 1}, 3)
	raise(&b, game.Point{Row: 2, Col: 2}, 2)
	return position(t, b,
		[2][game.WorkersPerPlayer]game.Point{
			{{Row: 0, Col: 1}, {Row: 4, Col: 0}},
			{{Row: 2, Col: 2}, {Row: 4, Col: 4}},
		},
		game.PlayerOne)
}

// blocked: player two's workers are walled into the top corners.
func blocked(t *testing.T) *game.State {
	t.Helper()
	var b game.Board
	capCell(&b, game.Point{Row: 0, Col: 1})
	capCell(&b, game.Point{Row: 1, Col: 0})
	capCell(&b, game.Point{Row: 1, Col: 1})
	capCell(&b, game.Point{Row: 0, Col: 3})
	capCell(&b, game.Point{Row: 1, Col: 3})
	capCell(&b, game.Point{Row: 1, Col: 4})
	return position(t, b,
		[2][game.WorkersPerPlayer]game.Point{
			{{Row: 4, Col: 0}, {Row: 4, Col: 4}},
			{{Row: 0, Col: 0}, {Row: 0, Col: 4}},
		},
		game.PlayerTwo)
}

func TestChooseMoveTakesTheWin(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		move, ok := ChooseMove(winInOne(t), depth)
		require.True(t, ok)
		require.Equal(t, game.Move{Worker: 0, To: game.Point{Row: 1, Col: 1}, Build: game.NoPoint}, move,
			"depth %d must take the immediate win", depth)
	}
}

func TestChooseMoveDefendsByDoming(t *testing.T) {
	// At depth two the search sees the reply: any turn that leaves (1,1)
	// open loses on the spot, and the square cannot be occupied since the
	// climb from height zero is too steep. The dome is the only defense.
	move, ok := ChooseMove(threatened(t), 2)
	require.True(t, ok)
	require.Equal(t, game.Point{Row: 1, Col: 1}, move.Build)
}

func TestChooseMoveNoLegalMove(t *testing.T) {
	_, ok := ChooseMove(blocked(t), 2)
	require.False(t, ok)
}

func TestChooseMoveIsDeterministic(t *testing.T) {
	s := game.NewState()
	places := []game.Point{{Row: 0, Col: 0}, {Row: 4, Col: 4}, {Row: 0, Col: 1}, {Row: 4, Col: 3}}
	for _, p := range places {
		require.NoError(t, s.Apply(game.Action{Type: game.PlaceWorker, Target: p}))
	}

	first, ok := ChooseMove(s, 2)
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		again, ok := ChooseMove(s, 2)
		require.True(t, ok)
		require.Equal(t, first, again, "run %d", i)
	}
}
