package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"santorini/agent"
	"santorini/searcher"
	"santorini/ui"
)

func main() {
	opponent := flag.String("opponent", "heuristic", "opponent type: human, random, heuristic or mcts")
	depth := flag.Int("depth", 2, "search depth of the heuristic opponent, in full turns")
	episodes := flag.Int("episodes", 10000, "playouts per move of the mcts opponent")
	goroutines := flag.Int("goroutines", 4, "parallel tree walkers of the mcts opponent")
	seat := flag.Int("seat", 1, "which seat you play, 1 moves first")
	logFile := flag.String("log", "", "append debug logs to this file (the screen owns the terminal)")
	flag.Parse()

	setupLogging(*logFile)

	ai, err := buildOpponent(*opponent, *depth, *episodes, *goroutines)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var cfg ui.Config
	if ai != nil {
		if *seat == 1 {
			cfg.Agents[1] = ai
		} else {
			cfg.Agents[0] = ai
		}
	}

	app, err := ui.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildOpponent(kind string, depth, episodes, goroutines int) (agent.Agent, error) {
	switch kind {
	case "human":
		return nil, nil
	case "random":
		return agent.NewRandom(), nil
	case "heuristic":
		return agent.NewHeuristic(depth), nil
	case "mcts":
		return agent.NewMCTS(
			searcher.WithEpisodes(episodes),
			searcher.WithGoroutines(goroutines)), nil
	}
	return nil, fmt.Errorf("unknown opponent %q", kind)
}

// setupLogging sends logs to a file when asked and drops them otherwise:
// stderr would fight the screen for the terminal.
func setupLogging(path string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if path == "" {
		log.Logger = zerolog.Nop()
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open log file:", err)
		os.Exit(2)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
