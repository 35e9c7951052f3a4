// flipchess plays chess games between bots, random movers and humans, and
// checks its move generator with perft counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/flipchess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("flipchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	files := &fileSet{}
	setupLogFile(cfg, files)
	setupOutputFile(cfg, files)
	setupDuplicateFile(cfg, files)

	code := run(cfg)
	if err := files.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	os.Exit(code)
}

// run performs the selected mode and returns the exit code.
func run(cfg *config.Config) int {
	if *perftDepth > 0 {
		return runPerft(cfg, *perftDepth, *divide, *verify)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := runMatch(ctx, cfg, os.Stdin, os.Stdout)
	if cfg.Verbosity > 0 {
		reportStatistics(cfg, stats)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config, files *fileSet) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	files.add(file)
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config, files *fileSet) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	files.add(file)
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config, files *fileSet) {
	if *duplicateFile == "" {
		return
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	files.add(file)
	cfg.Duplicate.DuplicateFile = file
}

// reportStatistics prints the final totals to the log.
func reportStatistics(cfg *config.Config, s matchStats) {
	fmt.Fprintf(cfg.LogFile, "%d game(s): %d white win(s), %d black win(s), %d draw(s), %d unfinished",
		s.games, s.whiteWins, s.blackWins, s.draws, s.unfinished)
	if cfg.Duplicate.Detect {
		fmt.Fprintf(cfg.LogFile, ", %d duplicate(s)", s.duplicates)
	}
	if s.skipped > 0 {
		fmt.Fprintf(cfg.LogFile, ", %d skipped", s.skipped)
	}
	fmt.Fprintln(cfg.LogFile, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: flipchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess between bots, random movers and humans.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nHuman players type moves in long algebraic form (e2e4, e7e8q).\n")
	fmt.Fprintf(os.Stderr, "Type quit to resign.\n")
}
