package config

import (
	"fmt"

	"github.com/lgbarn/flipchess-go/internal/errors"
)

// Game record formats.
const (
	LineFormat = "line"
	PGNFormat  = "pgn"
	JSONFormat = "json"
)

// OutputConfig holds output formatting settings.
type OutputConfig struct {
	// Format is one of LineFormat, PGNFormat or JSONFormat
	Format string

	// MaxLineLength wraps PGN move text
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        LineFormat,
		MaxLineLength: 80,
	}
}

// Validate checks the format name and line length.
func (c *OutputConfig) Validate() error {
	switch c.Format {
	case LineFormat, PGNFormat, JSONFormat:
	default:
		return fmt.Errorf("unknown output format %q: %w", c.Format, errors.ErrInvalidConfig)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("line length must not be negative, got %d: %w", c.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
