package config

import (
	"fmt"

	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/search"
)

// SearchConfig holds settings for the bot's minimax search.
type SearchConfig struct {
	// Depth is the number of plies searched below each candidate move
	Depth int

	// Terminal selects how positions without moves are scored (evaluate, mate)
	Terminal string

	// Pruning enables alpha-beta cutoffs
	Pruning bool

	// Seed feeds the move-order shuffle; 0 picks a time-based seed
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:    search.DefaultOptions().Depth,
		Terminal: search.TerminalEvaluate.String(),
		Pruning:  true,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 {
		return fmt.Errorf("search depth %d is negative: %w", s.Depth, errors.ErrInvalidConfig)
	}
	_, err := search.ParseTerminalPolicy(s.Terminal)
	return err
}

// Options converts the configuration into search options.
func (s *SearchConfig) Options() (search.Options, error) {
	if err := s.Validate(); err != nil {
		return search.Options{}, err
	}
	policy, _ := search.ParseTerminalPolicy(s.Terminal)
	return search.Options{
		Depth:          s.Depth,
		Terminal:       policy,
		DisablePruning: !s.Pruning,
	}, nil
}
