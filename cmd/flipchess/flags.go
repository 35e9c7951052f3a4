// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/flipchess-go/internal/config"
	"github.com/lgbarn/flipchess-go/internal/engine"
)

var (
	// Game options
	numGames    = flag.Int("games", 1, "Number of games to play")
	whitePlayer = flag.String("white", config.HumanPlayer, "White player: bot, random or human")
	blackPlayer = flag.String("black", config.BotPlayer, "Black player: bot, random or human")
	maxPlies    = flag.Int("maxplies", 200, "Stop a game unfinished after N plies (0 = no limit)")
	numWorkers  = flag.Int("workers", runtime.NumCPU(), "Number of games played concurrently")
	startFEN    = flag.String("fen", engine.InitialFEN, "Starting position")

	// Search options
	depth     = flag.Int("depth", 1, "Search depth in plies below each candidate move")
	terminal  = flag.String("terminal", "evaluate", "Scoring of positions without moves: evaluate or mate")
	noPruning = flag.Bool("noprune", false, "Disable alpha-beta pruning")
	seed      = flag.Int64("seed", 0, "Move-order seed (0 = time based)")

	// Evaluator options
	evalMode  = flag.String("eval", config.MaterialMode, "Evaluator: material, full or endgame")
	modelPath = flag.String("model", "", "ONNX model for the full and endgame evaluators")
	ortLib    = flag.String("ortlib", "", "onnxruntime shared library path")

	// Move generation checks
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the start position to depth N and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	verify     = flag.Bool("verify", false, "With -perft, compare counts with the reference generator")

	// Duplicate detection
	noDuplicates  = flag.Bool("nodups", false, "Don't check for repeated games")
	duplicateFile = flag.String("d", "", "Output repeated games to this file")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", config.LineFormat, "Game record format: line, pgn or json")
	lineLength   = flag.Int("w", 80, "Maximum line length of PGN move text")
	logFile      = flag.String("log", "", "Log file (default: stderr)")
	verbosity    = flag.Int("v", 1, "Verbosity: 0 silent, 1 game summaries, 2 every move")
	quiet        = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Info
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyMatchFlags(cfg)
	applySearchFlags(cfg)
	applyEvalFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	cfg.Output.Format = *outputFormat
	cfg.Output.MaxLineLength = *lineLength
}

// applyMatchFlags configures the game runner.
func applyMatchFlags(cfg *config.Config) {
	cfg.Match.Games = *numGames
	cfg.Match.White = *whitePlayer
	cfg.Match.Black = *blackPlayer
	cfg.Match.MaxPlies = *maxPlies
	cfg.Match.Workers = *numWorkers
	cfg.Match.StartFEN = *startFEN
}

// applySearchFlags configures the bot's search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Terminal = *terminal
	cfg.Search.Pruning = !*noPruning
	cfg.Search.Seed = *seed
}

// applyEvalFlags configures the leaf evaluator.
func applyEvalFlags(cfg *config.Config) {
	cfg.Eval.Mode = *evalMode
	cfg.Eval.ModelPath = *modelPath
	cfg.Eval.LibraryPath = *ortLib
}

// applyDuplicateFlags configures repeated game detection.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = !*noDuplicates
}
