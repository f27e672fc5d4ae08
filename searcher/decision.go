package searcher

import (
	"math"
	"sync"

	"santorini/game"
)

const (
	// Win and Loss are the rollout rewards credited to a node's mover.
	Win  float64 = 1.0
	Loss float64 = 0.0

	// cSquared is the squared exploration constant of the UCB1 policy.
	cSquared float64 = 2.0
)

// decision is a node of the UCT tree. Each node corresponds to the position
// reached after mover played the move stored on the edge from its parent;
// toMove is the player to act next. Rewards and the exploitation term are
// kept in the mover's perspective, which is the perspective of the parent
// doing the selecting.
type decision struct {
	sync.RWMutex
	parent   *decision
	move     game.Move
	mover    game.Player
	toMove   game.Player
	moves    []game.Move
	children []*decision
	rewards  float64
	visits   float64
	terminal bool
}

func newRoot(state *game.State) *decision {
	return &decision{
		mover:    state.Current().Other(),
		toMove:   state.Current(),
		moves:    state.LegalMoves(),
		terminal: state.Over(),
	}
}

func newDecision(parent *decision, move game.Move, state *game.State) *decision {
	return &decision{
		parent:   parent,
		move:     move,
		mover:    parent.toMove,
		toMove:   state.Current(),
		moves:    state.LegalMoves(),
		terminal: state.Over(),
	}
}

// SelectOrExpand walks one step down the tree. It expands the first
// unexplored move if any remain, otherwise it picks the child with the
// highest UCB1 value and applies its move to state. The returned flag is
// false when the walk must stop, either because this node is terminal or
// because a fresh child was just expanded.
func (d *decision) SelectOrExpand(state *game.State) (*decision, *game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if d.terminal {
		return d, state, false
	}

	if len(d.children) < len(d.moves) {
		move := d.moves[len(d.children)]
		next := state.ApplyMove(move)
		child := newDecision(d, move, next)
		child.applyLoss()
		d.children = append(d.children, child)
		return child, next, false
	}

	child := d.pickChild()
	child.applyLoss()
	return child, state.ApplyMove(child.move), true
}

// pickChild returns the child maximizing UCB1. Unvisited children (possible
// under concurrent expansion) score infinity and are taken first.
func (d *decision) pickChild() *decision {
	var best *decision
	bestValue := math.Inf(-1)
	for _, c := range d.children {
		v := c.ucb1(d.visits)
		if v > bestValue {
			best, bestValue = c, v
		}
	}
	return best
}

func (d *decision) ucb1(parentVisits float64) float64 {
	d.RLock()
	defer d.RUnlock()
	if d.visits == 0 {
		return math.Inf(1)
	}
	exploit := d.rewards / d.visits
	explore := math.Sqrt(cSquared * math.Log(parentVisits) / d.visits)
	return exploit + explore
}

// applyLoss adds a virtual loss: the visit is counted immediately so
// concurrent walkers spread out, and the reward is settled by Backup.
// Callers hold no lock on d; the parent's lock only serializes siblings.
func (d *decision) applyLoss() {
	d.Lock()
	d.visits++
	d.Unlock()
}

// Backup propagates a finished rollout up to the root, crediting Win to
// every node whose mover is the rollout winner. The virtual loss placed on
// the way down already counted the visit for every node below the root.
func (d *decision) Backup(winner game.Player) {
	node := d
	for node != nil {
		node.Lock()
		if node.parent == nil {
			node.visits++ // the root never had a virtual loss
		}
		if node.mover == winner {
			node.rewards += Win
		}
		node.Unlock()
		node = node.parent
	}
}

// bestMove is the move of the most visited child, ties broken by expansion
// order. ok is false when the root has no children to choose from.
func (d *decision) bestMove() (game.Move, bool) {
	d.RLock()
	defer d.RUnlock()
	if len(d.children) == 0 {
		return game.Move{}, false
	}
	best := d.children[0]
	bestVisits := best.visitCount()
	for _, c := range d.children[1:] {
		if v := c.visitCount(); v > bestVisits {
			best, bestVisits = c, v
		}
	}
	return best.move, true
}

// visitCount is a test hook.
func (d *decision) visitCount() float64 {
	d.RLock()
	defer d.RUnlock()
	return d.visits
}
