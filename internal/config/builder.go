package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithTerminalPolicy sets how positions without moves are scored.
func (b *ConfigBuilder) WithTerminalPolicy(policy string) *ConfigBuilder {
	b.cfg.Search.Terminal = policy
	return b
}

// WithPruning enables or disables alpha-beta cutoffs.
func (b *ConfigBuilder) WithPruning(enabled bool) *ConfigBuilder {
	b.cfg.Search.Pruning = enabled
	return b
}

// WithSeed sets the move-order seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithEvaluator sets the evaluator mode and its model path.
func (b *ConfigBuilder) WithEvaluator(mode, modelPath string) *ConfigBuilder {
	b.cfg.Eval.Mode = mode
	b.cfg.Eval.ModelPath = modelPath
	return b
}

// WithRuntimeLibrary sets the onnxruntime shared library path.
func (b *ConfigBuilder) WithRuntimeLibrary(path string) *ConfigBuilder {
	b.cfg.Eval.LibraryPath = path
	return b
}

// WithPlayers sets the white and black players.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Match.White = white
	b.cfg.Match.Black = black
	return b
}

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Match.Games = n
	return b
}

// WithMaxPlies sets the per-game ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = n
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Match.Workers = n
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Match.StartFEN = fen
	return b
}

// WithDuplicateDetection enables repeated game detection.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	return b
}

// WithOutputFormat sets the game record format and PGN line length.
func (b *ConfigBuilder) WithOutputFormat(format string, maxLineLength int) *ConfigBuilder {
	b.cfg.Output.Format = format
	b.cfg.Output.MaxLineLength = maxLineLength
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
