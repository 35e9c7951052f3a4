package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/errors"
)

// Player kinds accepted for MatchConfig.White and MatchConfig.Black.
const (
	BotPlayer    = "bot"
	RandomPlayer = "random"
	HumanPlayer  = "human"
)

// MatchConfig holds settings for the game runner.
type MatchConfig struct {
	// Games is the number of games to play
	Games int

	// MaxPlies ends a game unfinished after this many plies; 0 means no limit
	MaxPlies int

	// Workers is the number of games played concurrently
	Workers int

	// White and Black select the players
	White string
	Black string

	// StartFEN is the starting position of every game
	StartFEN string
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Games:    1,
		MaxPlies: 200,
		Workers:  runtime.NumCPU(),
		White:    HumanPlayer,
		Black:    BotPlayer,
		StartFEN: engine.InitialFEN,
	}
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	if m.Games < 1 {
		return fmt.Errorf("game count %d must be at least 1: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.MaxPlies < 0 {
		return fmt.Errorf("ply limit %d is negative: %w", m.MaxPlies, errors.ErrInvalidConfig)
	}
	if m.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", m.Workers, errors.ErrInvalidConfig)
	}
	for _, p := range []string{m.White, m.Black} {
		switch p {
		case BotPlayer, RandomPlayer, HumanPlayer:
		default:
			return fmt.Errorf("unknown player %q: %w", p, errors.ErrInvalidConfig)
		}
	}
	if _, err := engine.NewPositionFromFEN(m.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// HasHuman reports whether either side is played from the terminal.
func (m *MatchConfig) HasHuman() bool {
	return m.White == HumanPlayer || m.Black == HumanPlayer
}

// EffectiveWorkers returns the number of concurrent games to run. A human
// player can only sit at one board.
func (m *MatchConfig) EffectiveWorkers() int {
	if m.HasHuman() {
		return 1
	}
	return m.Workers
}
