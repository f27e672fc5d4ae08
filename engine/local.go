package engine

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"santorini/agent"
	"santorini/game"
)

// DefaultMaxTurns stops runaway matches. Random-vs-random games finish in a
// few dozen turns; anything near the guard indicates an agent bug.
const DefaultMaxTurns = 1000

// MoveMetric times one agent decision.
type MoveMetric struct {
	Turn     int
	Player   game.Player
	Duration time.Duration
}

// Result summarizes a finished match.
type Result struct {
	Winner     game.Player
	Blocked    bool
	Turns      int
	Duration   time.Duration
	Moves      []MoveMetric
	Incomplete bool
}

// Match plays two agents against each other. Workers are placed uniformly
// at random before the first turn, so repeated matches between deterministic
// agents still explore different games.
type Match struct {
	agents   [2]agent.Agent
	maxTurns int
	rng      *rand.Rand
}

type MatchOption func(*Match)

func WithMaxTurns(n int) MatchOption {
	return func(m *Match) { m.maxTurns = n }
}

// WithPlacementSeed fixes the random worker placement.
func WithPlacementSeed(seed uint64) MatchOption {
	return func(m *Match) { m.rng = rand.New(rand.NewSource(seed)) }
}

func NewMatch(one, two agent.Agent, options ...MatchOption) *Match {
	m := &Match{
		agents:   [2]agent.Agent{one, two},
		maxTurns: DefaultMaxTurns,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Run plays the match to the end and returns the result.
func (m *Match) Run() Result {
	start := time.Now()
	state := game.NewState()
	m.placeWorkers(state)

	var moves []MoveMetric
	turn := 0
	for !state.Over() && turn < m.maxTurns {
		current := state.Current()
		before := time.Now()
		move, ok := m.agents[current].FindMove(state)
		if !ok {
			// The rules detect blocked players at the start of the turn, so
			// a live game always has a move. An agent saying otherwise is
			// broken, not losing.
			log.Error().Stringer("player", current).Msg("agent found no move in a live game")
			return Result{Turns: turn, Duration: time.Since(start), Moves: moves, Incomplete: true}
		}
		state = state.ApplyMove(move)
		turn++
		moves = append(moves, MoveMetric{Turn: turn, Player: current, Duration: time.Since(before)})
	}

	result := Result{
		Turns:      turn,
		Duration:   time.Since(start),
		Moves:      moves,
		Incomplete: !state.Over(),
	}
	if winner, over := state.Winner(); over {
		result.Winner = winner
		result.Blocked = state.Blocked()
	}

	log.Info().
		Stringer("winner", result.Winner).
		Bool("blocked", result.Blocked).
		Int("turns", result.Turns).
		Dur("duration", result.Duration).
		Bool("incomplete", result.Incomplete).
		Msg("match finished")
	return result
}

// placeWorkers fills the placement phase with uniformly random legal spots,
// alternating players the way the rules do.
func (m *Match) placeWorkers(state *game.State) {
	for state.Phase() == game.PlacingWorkers {
		var free []game.Point
		for r := 0; r < game.BoardSize; r++ {
			for c := 0; c < game.BoardSize; c++ {
				p := game.Point{Row: r, Col: c}
				if !state.Occupied(p) {
					free = append(free, p)
				}
			}
		}
		spot := free[m.rng.Intn(len(free))]
		if err := state.Apply(game.Action{Type: game.PlaceWorker, Target: spot}); err != nil {
			panic(err) // unoccupied in-bounds placements never fail
		}
	}
}
