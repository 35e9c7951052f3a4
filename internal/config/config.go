// Package config provides configuration for flipchess.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration. Sub-configurations group the
// settings of each component.
type Config struct {
	// Verbosity: 0=nothing, 1=game summaries, 2=running commentary
	Verbosity int

	Search    *SearchConfig
	Eval      *EvalConfig
	Match     *MatchConfig
	Duplicate *DuplicateConfig
	Output    *OutputConfig

	// OutputFilename is the -o target, empty for stdout.
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Eval:       NewEvalConfig(),
		Match:      NewMatchConfig(),
		Duplicate:  NewDuplicateConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream game summaries and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration and returns the first error.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Eval.Validate(); err != nil {
		return err
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
