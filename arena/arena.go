// Package arena rates agents against each other. It plays a round-robin
// tournament, tracks an Elo rating per contestant and can persist every
// match to a sqlite database for later analysis.
package arena

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"santorini/agent"
	"santorini/engine"
	"santorini/game"
)

const (
	// InitialRating is every contestant's starting Elo.
	InitialRating = 1000.0

	defaultKFactor = 32.0
	defaultRounds  = 10
)

// A Contestant names an agent configuration. New builds a fresh agent per
// game so stateful agents never share randomness between matches.
type Contestant struct {
	Name string
	New  func() agent.Agent

	Rating float64
	Wins   int
	Losses int
	Draws  int
}

// Arena runs the tournament.
type Arena struct {
	contestants []*Contestant
	rounds      int
	kFactor     float64
	store       *Store
	rng         *rand.Rand
}

type ArenaOption func(*Arena)

// WithRounds sets how many games each pair plays. First move alternates
// between the two from game to game.
func WithRounds(n int) ArenaOption {
	return func(a *Arena) { a.rounds = n }
}

func WithKFactor(k float64) ArenaOption {
	return func(a *Arena) { a.kFactor = k }
}

// WithStore persists every match record.
func WithStore(s *Store) ArenaOption {
	return func(a *Arena) { a.store = s }
}

// WithSeed fixes the worker placements, for reproducible tournaments
// between deterministic agents.
func WithSeed(seed uint64) ArenaOption {
	return func(a *Arena) { a.rng = rand.New(rand.NewSource(seed)) }
}

func New(contestants []*Contestant, options ...ArenaOption) *Arena {
	a := &Arena{
		contestants: contestants,
		rounds:      defaultRounds,
		kFactor:     defaultKFactor,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(a)
	}
	for _, c := range a.contestants {
		c.Rating = InitialRating
	}
	return a
}

// Run plays the full round robin and returns the contestants sorted by
// final rating, best first.
func (a *Arena) Run() ([]*Contestant, error) {
	for i := 0; i < len(a.contestants); i++ {
		for j := i + 1; j < len(a.contestants); j++ {
			for round := 0; round < a.rounds; round++ {
				one, two := a.contestants[i], a.contestants[j]
				if round%2 == 1 {
					one, two = two, one
				}
				if err := a.playGame(one, two); err != nil {
					return nil, err
				}
			}
		}
	}

	standings := make([]*Contestant, len(a.contestants))
	copy(standings, a.contestants)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Rating > standings[j].Rating
	})
	return standings, nil
}

// playGame runs one match with contestant one moving first, updates both
// ratings and persists the record when a store is attached.
func (a *Arena) playGame(one, two *Contestant) error {
	match := engine.NewMatch(one.New(), two.New(),
		engine.WithPlacementSeed(a.rng.Uint64()))
	result := match.Run()

	scoreOne := 0.5
	switch {
	case result.Incomplete:
		one.Draws++
		two.Draws++
	case result.Winner == game.PlayerOne:
		scoreOne = 1.0
		one.Wins++
		two.Losses++
	default:
		scoreOne = 0.0
		one.Losses++
		two.Wins++
	}
	a.updateRatings(one, two, scoreOne)

	log.Info().
		Str("playerOne", one.Name).
		Str("playerTwo", two.Name).
		Stringer("winner", result.Winner).
		Bool("incomplete", result.Incomplete).
		Float64("ratingOne", one.Rating).
		Float64("ratingTwo", two.Rating).
		Msg("arena game finished")

	if a.store == nil {
		return nil
	}
	rec := MatchRecord{
		PlayerOne: one.Name,
		PlayerTwo: two.Name,
		Blocked:   result.Blocked,
		Turns:     result.Turns,
		Duration:  result.Duration,
		PlayedAt:  time.Now().UTC(),
	}
	if !result.Incomplete {
		rec.Winner = result.Winner.String()
	}
	return a.store.Record(rec)
}

// updateRatings applies the standard Elo update: each side's rating moves by
// kFactor times the gap between its score and its expected score.
func (a *Arena) updateRatings(one, two *Contestant, scoreOne float64) {
	expectedOne := expectedScore(one.Rating, two.Rating)
	one.Rating += a.kFactor * (scoreOne - expectedOne)
	two.Rating += a.kFactor * ((1 - scoreOne) - (1 - expectedOne))
}

// expectedScore is the probability the first rating beats the second.
func expectedScore(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/400))
}
