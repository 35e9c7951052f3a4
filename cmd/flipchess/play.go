package main

import (
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/flipchess-go/internal/config"
	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/eval"
	"github.com/lgbarn/flipchess-go/internal/hashing"
	"github.com/lgbarn/flipchess-go/internal/match"
	"github.com/lgbarn/flipchess-go/internal/output"
	"github.com/lgbarn/flipchess-go/internal/search"
	"github.com/lgbarn/flipchess-go/internal/worker"
)

// matchStats counts the outcomes of a run.
type matchStats struct {
	games      int
	whiteWins  int
	blackWins  int
	draws      int
	unfinished int
	duplicates int
	skipped    int // queued games dropped after an error or interrupt
}

// add counts one finished game.
func (s *matchStats) add(result worker.ProcessResult) {
	s.games++
	switch result.Record.Result {
	case match.WhiteWins:
		s.whiteWins++
	case match.BlackWins:
		s.blackWins++
	case match.Draw:
		s.draws++
	default:
		s.unfinished++
	}
	if result.Duplicate {
		s.duplicates++
	}
}

// syncWriter serialises writes from concurrent games.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// newEvaluator builds the configured leaf evaluator and its cleanup.
func newEvaluator(cfg *config.EvalConfig) (eval.Evaluator, func() error, error) {
	if !cfg.UsesModel() {
		return eval.MaterialEvaluator{}, func() error { return nil }, nil
	}
	mode, opts, err := cfg.ONNXOptions()
	if err != nil {
		return nil, nil, err
	}
	model, err := eval.NewONNXModel(opts)
	if err != nil {
		return nil, nil, err
	}
	return eval.NewModelEvaluator(mode, model), model.Close, nil
}

// playerFactory creates the players of each game. Bots and random movers
// are fresh per game; the human shares one terminal.
type playerFactory struct {
	evaluator eval.Evaluator
	options   search.Options
	baseSeed  uint64
	human     *match.HumanPlayer
}

// newPlayer creates the player of the given kind for game index. White and
// black get distinct seeds.
func (f *playerFactory) newPlayer(kind string, index, side int) match.Player {
	seed := f.baseSeed + uint64(index)*2 + uint64(side)
	switch kind {
	case config.HumanPlayer:
		return f.human
	case config.RandomPlayer:
		return match.NewRandomPlayer(seed)
	default:
		return match.NewSearchPlayer(search.NewSearcher(f.evaluator, f.options, seed))
	}
}

// baseSeed returns the configured seed, or a time-based one for 0.
func baseSeed(seed int64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(seed)
}

// runMatch plays cfg.Match.Games games on a worker pool and writes each
// finished game to the output in the configured format. Human players read
// moves from in and see the board and prompts on term, which is kept apart
// from the record stream. The first game error stops the run.
func runMatch(ctx context.Context, cfg *config.Config, in io.Reader, term io.Writer) (matchStats, error) {
	var stats matchStats

	start, err := engine.NewPositionFromFEN(cfg.Match.StartFEN)
	if err != nil {
		return stats, err
	}
	opts, err := cfg.Search.Options()
	if err != nil {
		return stats, err
	}
	evaluator, closeEval, err := newEvaluator(cfg.Eval)
	if err != nil {
		return stats, err
	}
	defer closeEval() //nolint:errcheck // cleanup on exit

	out := &syncWriter{w: cfg.OutputFile}
	log := &syncWriter{w: cfg.LogFile}
	players := &playerFactory{
		evaluator: evaluator,
		options:   opts,
		baseSeed:  baseSeed(cfg.Search.Seed),
		human:     match.NewHumanPlayer(in, term),
	}
	newGame := func(index int) *match.Game {
		game := match.NewGame(
			players.newPlayer(cfg.Match.White, index, 0),
			players.newPlayer(cfg.Match.Black, index, 1),
		)
		game.MaxPlies = cfg.Match.MaxPlies
		game.Log = log
		game.Verbosity = cfg.Verbosity
		return game
	}

	games, err := output.NewGameWriter(cfg.Output, out)
	if err != nil {
		return stats, err
	}
	var dupGames output.GameWriter
	if cfg.Duplicate.DuplicateFile != nil {
		if dupGames, err = output.NewGameWriter(cfg.Output, cfg.Duplicate.DuplicateFile); err != nil {
			return stats, err
		}
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Detect {
		detector = hashing.NewThreadSafeDuplicateDetector()
	}

	bufferSize := cfg.Match.Games
	if bufferSize > 100 {
		bufferSize = 100
	}

	g, ctx := errgroup.WithContext(ctx)
	pool := worker.NewPool(worker.PlayGames(newGame, detector),
		worker.WithWorkers(cfg.Match.EffectiveWorkers()),
		worker.WithBufferSize(bufferSize))
	pool.Start(ctx)

	// Producer: one work item per game, each with its own start position.
	// A stopped pool ends submission; the collector reports why.
	g.Go(func() error {
		defer pool.Close()
		for i := 0; i < cfg.Match.Games; i++ {
			if pool.Submit(worker.WorkItem{Index: i, Start: start.Clone()}) != nil {
				break
			}
		}
		return nil
	})

	// Collector: the only goroutine touching stats and the output files.
	g.Go(func() error {
		var firstErr error
		for result := range pool.Results() {
			if firstErr != nil {
				continue
			}
			if result.Error != nil {
				firstErr = result.Error
				pool.Stop()
				continue
			}
			stats.add(result)
			if err := games.WriteGame(result.Index+1, result.Record); err != nil {
				firstErr = err
				pool.Stop()
				continue
			}
			if result.Duplicate && dupGames != nil {
				if err := dupGames.WriteGame(result.Index+1, result.Record); err != nil {
					firstErr = err
					pool.Stop()
				}
			}
		}
		if firstErr == nil {
			firstErr = ctx.Err()
		}
		return firstErr
	})

	err = g.Wait()
	stats.skipped = int(pool.Skipped())
	if closeErr := closeWriters(games, dupGames); err == nil {
		err = closeErr
	}
	return stats, err
}

// closeWriters flushes the game writers, returning the first error.
func closeWriters(writers ...output.GameWriter) error {
	var first error
	for _, w := range writers {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
