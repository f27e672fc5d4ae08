package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"santorini/game"
	"santorini/searcher"
)

func opening(t *testing.T) *game.State {
	t.Helper()
	s := game.NewState()
	places := []game.Point{{Row: 0, Col: 0}, {Row: 4, Col: 4}, {Row: 0, Col: 1}, {Row: 4, Col: 3}}
	for _, p := range places {
		require.NoError(t, s.Apply(game.Action{Type: game.PlaceWorker, Target: p}))
	}
	return s
}

// every agent must return moves the rules accept
func testAgentMovesAreLegal(t *testing.T, a Agent) {
	t.Helper()
	s := opening(t)
	for turn := 0; turn < 10 && !s.Over(); turn++ {
		move, ok := a.FindMove(s)
		require.True(t, ok, "turn %d", turn)
		s = s.ApplyMove(move)
	}
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		testAgentMovesAreLegal(t, NewRandomSeeded(1))
	})

	t.Run("is reproducible per seed", func(t *testing.T) {
		s := opening(t)
		first, _ := NewRandomSeeded(42).FindMove(s)
		again, _ := NewRandomSeeded(42).FindMove(s)
		require.Equal(t, first, again)
	})

	t.Run("reports a blocked player", func(t *testing.T) {
		var b game.Board
		for _, p := range []game.Point{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 4}} {
			for i := 0; i <= game.MaxHeight; i++ {
				b.Build(p)
			}
		}
		s, err := game.NewStateFromPosition(b,
			[2][game.WorkersPerPlayer]game.Point{
				{{Row: 4, Col: 0}, {Row: 4, Col: 4}},
				{{Row: 0, Col: 0}, {Row: 0, Col: 4}},
			},
			game.PlayerTwo)
		require.NoError(t, err)

		_, ok := NewRandomSeeded(1).FindMove(s)
		require.False(t, ok)
	})
}

func TestHeuristicAgent(t *testing.T) {
	testAgentMovesAreLegal(t, NewHeuristic(2))
}

func TestMCTSAgent(t *testing.T) {
	testAgentMovesAreLegal(t, NewMCTS(searcher.WithEpisodes(200), searcher.WithGoroutines(2), searcher.WithSeed(3)))
}
