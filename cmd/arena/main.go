// Command arena plays a round-robin tournament between the built-in agents
// and prints their Elo standings. Matches can be persisted to sqlite for
// later analysis.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"santorini/agent"
	"santorini/arena"
	"santorini/searcher"
)

func main() {
	rounds := flag.Int("rounds", 10, "games per pairing")
	depth := flag.Int("depth", 2, "search depth of the heuristic contestants")
	episodes := flag.Int("episodes", 2000, "playouts per move of the mcts contestant")
	dbPath := flag.String("db", "", "sqlite file to record matches in (empty disables)")
	verbose := flag.Bool("v", false, "log every match")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	contestants := []*arena.Contestant{
		{Name: "random", New: func() agent.Agent { return agent.NewRandom() }},
		{Name: fmt.Sprintf("heuristic-%d", *depth), New: func() agent.Agent { return agent.NewHeuristic(*depth) }},
		{Name: fmt.Sprintf("mcts-%d", *episodes), New: func() agent.Agent {
			return agent.NewMCTS(searcher.WithEpisodes(*episodes))
		}},
	}

	options := []arena.ArenaOption{arena.WithRounds(*rounds)}
	if *dbPath != "" {
		store, err := arena.OpenStore(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open match store")
		}
		defer store.Close()
		options = append(options, arena.WithStore(store))
	}

	standings, err := arena.New(contestants, options...).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	fmt.Printf("%-16s %8s %5s %6s %6s\n", "contestant", "rating", "wins", "losses", "draws")
	for _, c := range standings {
		fmt.Printf("%-16s %8.1f %5d %6d %6d\n", c.Name, c.Rating, c.Wins, c.Losses, c.Draws)
	}
}
