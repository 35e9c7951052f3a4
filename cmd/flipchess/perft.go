package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/flipchess-go/internal/config"
	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/reference"
)

// runPerft counts the leaf nodes below the start position and returns the
// process exit code. With verify, any disagreement with the reference
// generators is reported and gives exit code 1.
func runPerft(cfg *config.Config, depth int, divide, verify bool) int {
	pos, err := engine.NewPositionFromFEN(cfg.Match.StartFEN)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	began := time.Now()
	var total uint64
	if divide {
		counts := engine.Divide(pos, depth)
		for _, move := range reference.SortedKeys(counts) {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", move, counts[move])
			total += counts[move]
		}
	} else {
		total = engine.Perft(pos, depth)
	}
	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, total)
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d nodes in %v\n", total, time.Since(began).Round(time.Millisecond))
	}

	if !verify {
		return 0
	}

	mismatches, err := reference.Compare(pos, depth)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	goose, err := reference.GoosePerft(cfg.Match.StartFEN, depth)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if len(mismatches) == 0 && goose == total {
		fmt.Fprintf(cfg.OutputFile, "reference agrees\n")
		return 0
	}
	for _, m := range mismatches {
		fmt.Fprintf(cfg.OutputFile, "mismatch %s\n", m)
	}
	if goose != total {
		fmt.Fprintf(cfg.OutputFile, "mismatch goosemg perft(%d) = %d\n", depth, goose)
	}
	return 1
}
