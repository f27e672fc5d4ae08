package game

import "fmt"

// Player identifies one of the two players.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p)+1)
}

// WorkersPerPlayer is fixed by the rules.
const WorkersPerPlayer = 2

// Phase is the stage of the turn state machine the game is in.
type Phase int

const (
	// PlacingWorkers is the setup phase: players alternate placing one
	// worker at a time until both have two on the board.
	PlacingWorkers Phase = iota
	// SelectingWorker starts a regular turn: the active player picks which
	// worker to move.
	SelectingWorker
	// ChoosingDestination follows a selection: the active player picks the
	// cell the selected worker moves to.
	ChoosingDestination
	// ChoosingBuildSite follows a non-winning move: the active player picks
	// the cell the moved worker builds on.
	ChoosingBuildSite
	// GameOver is terminal; see State.Winner and State.Blocked for how.
	GameOver
)

func (ph Phase) String() string {
	switch ph {
	case PlacingWorkers:
		return "PlacingWorkers"
	case SelectingWorker:
		return "SelectingWorker"
	case ChoosingDestination:
		return "ChoosingDestination"
	case ChoosingBuildSite:
		return "ChoosingBuildSite"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(ph))
	}
}

// State is the single source of truth for a game: the board, both players'
// worker positions, whose turn it is, and the current phase. All mutation
// goes through Apply (one sub-action at a time) or ApplyMove (one full turn,
// on a copy). Everything else is a read-only query.
//
// State contains only arrays and scalars, so a shallow copy is a full
// independent snapshot.
type State struct {
	board    Board
	workers  [2][WorkersPerPlayer]Point // indexed by Player
	placed   [2]int                     // workers placed so far, per player
	current  Player
	phase    Phase
	selected int   // worker index chosen this turn, -1 outside a turn
	moved    Point // destination of this turn's move; builds must be adjacent
	winner   Player
	over     bool
	blocked  bool // the game ended because the loser could not move
}

// NewState returns a fresh game in the placement phase with PlayerOne to act.
func NewState() *State {
	s := &State{current: PlayerOne, phase: PlacingWorkers, selected: -1, moved: NoPoint}
	for p := range s.workers {
		for w := range s.workers[p] {
			s.workers[p][w] = NoPoint
		}
	}
	return s
}

// NewStateFromPosition builds a mid-game state from an arbitrary board and
// worker layout, with the given player about to select a worker. It rejects
// out-of-bounds or overlapping workers and workers standing on domes, and
// performs the start-of-turn mobility check, so the returned state may
// already be over.
func NewStateFromPosition(board Board, workers [2][WorkersPerPlayer]Point, current Player) (*State, error) {
	s := &State{
		board:    board,
		workers:  workers,
		placed:   [2]int{WorkersPerPlayer, WorkersPerPlayer},
		current:  current,
		phase:    SelectingWorker,
		selected: -1,
		moved:    NoPoint,
	}
	seen := map[Point]bool{}
	for p := range workers {
		for _, loc := range workers[p] {
			if !loc.InBounds() {
				return nil, fmt.Errorf("worker out of bounds at %v", loc)
			}
			if seen[loc] {
				return nil, fmt.Errorf("two workers share cell %v", loc)
			}
			if board.Capped(loc) {
				return nil, fmt.Errorf("worker on capped cell %v", loc)
			}
			seen[loc] = true
		}
	}
	s.beginTurn()
	return s, nil
}

// Copy returns an independent deep copy.
func (s *State) Copy() *State {
	c := *s
	return &c
}

// Board returns the current board by value.
func (s *State) Board() Board {
	return s.board
}

// Current returns the active player. In the GameOver phase it is the player
// whose turn would have been next.
func (s *State) Current() Player {
	return s.current
}

// Phase returns the current turn phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Over reports whether the game has ended.
func (s *State) Over() bool {
	return s.over
}

// Winner returns the winning player; ok is false while the game is running.
func (s *State) Winner() (Player, bool) {
	return s.winner, s.over
}

// Blocked reports whether the game ended because the player to move had no
// legal worker/destination combination.
func (s *State) Blocked() bool {
	return s.blocked
}

// Workers returns the positions of a player's workers. Unplaced workers are
// NoPoint.
func (s *State) Workers(p Player) [WorkersPerPlayer]Point {
	return s.workers[p]
}

// Selected returns the worker index picked this turn, or -1.
func (s *State) Selected() int {
	return s.selected
}

// WorkerAt returns which player and worker index occupy the cell.
func (s *State) WorkerAt(loc Point) (Player, int, bool) {
	for p := range s.workers {
		for w, wp := range s.workers[p] {
			if w < s.placed[p] && wp == loc {
				return Player(p), w, true
			}
		}
	}
	return 0, 0, false
}

// Occupied reports whether any worker stands on the cell.
func (s *State) Occupied(loc Point) bool {
	_, _, ok := s.WorkerAt(loc)
	return ok
}

// Snapshot is a read-only rendering view of a State.
type Snapshot struct {
	Heights [BoardSize][BoardSize]int
	Capped  [BoardSize][BoardSize]bool
	Workers [2][WorkersPerPlayer]Point
	Current Player
	Phase   Phase
	Winner  Player
	Over    bool
	Blocked bool
}

// Snapshot returns a copy of everything a front end needs to render the game.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Workers: s.workers,
		Current: s.current,
		Phase:   s.phase,
		Winner:  s.winner,
		Over:    s.over,
		Blocked: s.blocked,
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Point{Row: r, Col: c}
			snap.Heights[r][c] = s.board.Height(p)
			snap.Capped[r][c] = s.board.Capped(p)
		}
	}
	return snap
}
