package config

import "io"

// DuplicateConfig holds settings for repeated self-play game detection.
type DuplicateConfig struct {
	// Detect enables duplicate detection across the games of one run
	Detect bool

	// DuplicateFile receives the move list of each repeated game
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Detect: true,
	}
}
