// Package ui is the terminal front end. It renders the board with tcell,
// turns key presses into engine actions and lets a computer opponent take
// its turns through the same engine.
package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"santorini/agent"
	"santorini/engine"
	"santorini/game"
)

// Config wires up one game. A nil agent in Agents means that seat is played
// at the keyboard; two nil entries give a hotseat game.
type Config struct {
	Agents [2]agent.Agent
}

// App runs one game in the terminal.
type App struct {
	screen tcell.Screen
	eng    *engine.Engine
	agents [2]agent.Agent
	cursor game.Point
	status string
	rng    *rand.Rand
}

func NewApp(cfg Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &App{
		screen: screen,
		eng:    engine.New(),
		agents: cfg.Agents,
		cursor: game.Point{Row: 2, Col: 2},
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}, nil
}

// Run plays the game until it ends or the user quits.
func (a *App) Run() error {
	defer a.screen.Fini()

	for {
		state := a.eng.State()

		if ai := a.agents[state.Current()]; ai != nil && !state.Over() {
			a.status = fmt.Sprintf("%s is thinking...", state.Current())
			a.draw()
			if err := a.playAgentTurn(ai); err != nil {
				return err
			}
			a.status = ""
			continue
		}

		a.draw()
		if quit := a.handleEvent(a.screen.PollEvent()); quit {
			return nil
		}
	}
}

// playAgentTurn lets the computer place or move through the engine, exactly
// like keyboard input would.
func (a *App) playAgentTurn(ai agent.Agent) error {
	state := a.eng.State()
	if state.Phase() == game.PlacingWorkers {
		return a.eng.Submit(game.Action{Type: game.PlaceWorker, Target: a.randomFreeCell(state)})
	}
	move, ok := ai.FindMove(state)
	if !ok {
		// The rules end blocked games before the agent is asked.
		return fmt.Errorf("agent for %s found no move in a live game", state.Current())
	}
	return a.eng.PlayMove(move)
}

func (a *App) randomFreeCell(state *game.State) game.Point {
	var free []game.Point
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			p := game.Point{Row: r, Col: c}
			if !state.Occupied(p) {
				free = append(free, p)
			}
		}
	}
	return free[a.rng.Intn(len(free))]
}

// handleEvent reacts to one terminal event and reports whether to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyUp || ev.Rune() == 'w':
			a.moveCursor(-1, 0)
		case ev.Key() == tcell.KeyDown || ev.Rune() == 's':
			a.moveCursor(1, 0)
		case ev.Key() == tcell.KeyLeft || ev.Rune() == 'a':
			a.moveCursor(0, -1)
		case ev.Key() == tcell.KeyRight || ev.Rune() == 'd':
			a.moveCursor(0, 1)
		case ev.Key() == tcell.KeyEnter || ev.Rune() == 'e' || ev.Rune() == ' ':
			a.selectCursor()
		}
	}
	return false
}

func (a *App) moveCursor(dr, dc int) {
	next := game.Point{Row: a.cursor.Row + dr, Col: a.cursor.Col + dc}
	if next.InBounds() {
		a.cursor = next
	}
}

// selectCursor submits the action the current phase calls for at the cursor.
// Rejections become the status line; the game itself never changes on a bad
// action.
func (a *App) selectCursor() {
	state := a.eng.State()
	if state.Over() {
		return
	}

	var action game.Action
	switch state.Phase() {
	case game.PlacingWorkers:
		action = game.Action{Type: game.PlaceWorker, Target: a.cursor}
	case game.SelectingWorker:
		player, worker, ok := state.WorkerAt(a.cursor)
		if !ok || player != state.Current() {
			a.status = "select one of your own workers"
			return
		}
		action = game.Action{Type: game.SelectWorker, Worker: worker}
	case game.ChoosingDestination:
		action = game.Action{Type: game.MoveTo, Target: a.cursor}
	case game.ChoosingBuildSite:
		action = game.Action{Type: game.BuildAt, Target: a.cursor}
	default:
		return
	}

	if err := a.eng.Submit(action); err != nil {
		a.status = err.Error()
		log.Debug().Err(err).Msg("input rejected")
		return
	}
	a.status = ""
}

// highlights returns the cells worth drawing attention to in the current
// phase: selectable workers, legal destinations or legal build sites.
func (a *App) highlights() []game.Point {
	state := a.eng.State()
	switch state.Phase() {
	case game.SelectingWorker:
		var cells []game.Point
		for w, loc := range state.Workers(state.Current()) {
			if len(state.LegalDestinations(w)) > 0 {
				cells = append(cells, loc)
			}
		}
		return cells
	case game.ChoosingDestination:
		return state.LegalDestinations(state.Selected())
	case game.ChoosingBuildSite:
		return state.LegalBuilds()
	}
	return nil
}

func (a *App) draw() {
	state := a.eng.State()
	a.screen.Clear()

	title := a.titleLine(state)
	drawText(a.screen, 1, 0, tcell.StyleDefault.Bold(true), title)

	b := board{state: state, cursor: a.cursor, highlights: a.highlights()}
	b.draw(a.screen, 1, 2)

	if a.status != "" {
		drawText(a.screen, 1, 2+boardRows+1, statusStyle, a.status)
	}
	drawText(a.screen, 1, 2+boardRows+3, tcell.StyleDefault.Dim(true),
		"arrows/wasd move, enter selects, q quits")

	if winner, over := state.Winner(); over {
		reason := "by reaching the third level"
		if state.Blocked() {
			reason = "opponent has no legal move"
		}
		drawText(a.screen, 1, 2+boardRows+2, bannerStyle,
			fmt.Sprintf("%s wins (%s) - press q to exit", winner, reason))
	}

	a.screen.Show()
}

func (a *App) titleLine(state *game.State) string {
	if state.Over() {
		return "Santorini - game over"
	}
	switch state.Phase() {
	case game.PlacingWorkers:
		return fmt.Sprintf("Santorini - %s places a worker", state.Current())
	case game.SelectingWorker:
		return fmt.Sprintf("Santorini - %s selects a worker", state.Current())
	case game.ChoosingDestination:
		return fmt.Sprintf("Santorini - %s moves", state.Current())
	case game.ChoosingBuildSite:
		return fmt.Sprintf("Santorini - %s builds", state.Current())
	}
	return "Santorini"
}
