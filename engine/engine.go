// Package engine drives games: interactively, one validated action at a
// time, or as unattended matches between two agents.
package engine

import (
	"github.com/rs/zerolog/log"

	"santorini/game"
)

// Engine owns a single game and funnels every action through the rules.
// Rejected actions leave the game untouched and are reported back to the
// caller, so a front end can surface them without special cases.
type Engine struct {
	state   *game.State
	actions int
}

func New() *Engine {
	return &Engine{state: game.NewState()}
}

func NewFromState(state *game.State) *Engine {
	return &Engine{state: state}
}

// State exposes the live game for rendering and move generation. Callers
// must not mutate it; all changes go through Submit.
func (e *Engine) State() *game.State {
	return e.state
}

// Submit validates and applies one action.
func (e *Engine) Submit(a game.Action) error {
	if err := e.state.Apply(a); err != nil {
		log.Debug().Err(err).
			Stringer("action", a.Type).
			Stringer("player", e.state.Current()).
			Msg("action rejected")
		return err
	}
	e.actions++
	return nil
}

// PlayMove submits a full turn as its select, move and build actions. A
// winning move has no build step.
func (e *Engine) PlayMove(m game.Move) error {
	if err := e.Submit(game.Action{Type: game.SelectWorker, Worker: m.Worker}); err != nil {
		return err
	}
	if err := e.Submit(game.Action{Type: game.MoveTo, Target: m.To}); err != nil {
		return err
	}
	if m.Wins() {
		return nil
	}
	return e.Submit(game.Action{Type: game.BuildAt, Target: m.Build})
}

// Outcome reports the result once the game is over.
func (e *Engine) Outcome() (Outcome, bool) {
	winner, over := e.state.Winner()
	if !over {
		return Outcome{}, false
	}
	return Outcome{Winner: winner, Blocked: e.state.Blocked()}, true
}

// Outcome describes a finished game. Blocked is true when the loser ran out
// of moves rather than conceding a climb to the third level.
type Outcome struct {
	Winner  game.Player
	Blocked bool
}
