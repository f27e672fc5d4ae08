package searcher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"santorini/game"
)

const (
	defaultGoroutines = 4
	defaultEpisodes   = 10000
)

// UCT is a parallel Monte Carlo tree search. Every call to FindNextMove
// builds a fresh tree for the given position: several goroutines walk it
// concurrently under virtual loss, finish each walk with a uniformly random
// playout, and back the result up the path. The chosen move is the one with
// the most visits.
type UCT struct {
	goroutines int
	episodes   int
	duration   time.Duration
	seed       uint64
}

// Option configures a UCT searcher.
type Option func(*UCT)

// WithGoroutines sets how many tree walkers run concurrently.
func WithGoroutines(n int) Option {
	return func(u *UCT) { u.goroutines = n }
}

// WithEpisodes bounds the search by a total number of playouts.
func WithEpisodes(n int) Option {
	return func(u *UCT) { u.episodes = n }
}

// WithDuration bounds the search by wall-clock time instead of a playout
// count. When set it takes precedence over WithEpisodes.
func WithDuration(d time.Duration) Option {
	return func(u *UCT) { u.duration = d }
}

// WithSeed fixes the playout randomness, for reproducible searches.
func WithSeed(seed uint64) Option {
	return func(u *UCT) { u.seed = seed }
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{
		goroutines: defaultGoroutines,
		episodes:   defaultEpisodes,
		seed:       uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(u)
	}
	return u
}

// FindNextMove searches the position and returns the most visited root
// move. ok is false when the active player has no legal move.
func (u *UCT) FindNextMove(state *game.State) (game.Move, bool) {
	if len(state.LegalMoves()) == 0 {
		return game.Move{}, false
	}

	start := time.Now()
	root := newRoot(state)

	var done int64
	var wg sync.WaitGroup
	for i := 0; i < u.goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(u.seed + uint64(id)))
			for u.keepGoing(start, &done) {
				u.episode(root, state, rng)
				atomic.AddInt64(&done, 1)
			}
		}(i)
	}
	wg.Wait()

	move, ok := root.bestMove()
	log.Debug().
		Int64("episodes", atomic.LoadInt64(&done)).
		Dur("elapsed", time.Since(start)).
		Stringer("player", state.Current()).
		Msg("search finished")
	return move, ok
}

func (u *UCT) keepGoing(start time.Time, done *int64) bool {
	if u.duration > 0 {
		return time.Since(start) < u.duration
	}
	return atomic.LoadInt64(done) < int64(u.episodes)
}

// episode runs one walk from the root: select and expand down the tree,
// play out the rest of the game at random, and back the winner up.
func (u *UCT) episode(root *decision, state *game.State, rng *rand.Rand) {
	node := root
	for {
		child, childState, selected := node.SelectOrExpand(state)
		node, state = child, childState
		if !selected {
			break
		}
	}
	node.Backup(rollout(state, rng))
}

// rollout plays uniformly random moves until the game ends and returns the
// winner. The rules guarantee termination: every turn either wins outright
// or adds a level somewhere, and a full board leaves someone blocked.
func rollout(state *game.State, rng *rand.Rand) game.Player {
	for !state.Over() {
		moves := state.LegalMoves()
		state = state.ApplyMove(moves[rng.Intn(len(moves))])
	}
	winner, _ := state.Winner()
	return winner
}
