// Package search implements depth-limited minimax with alpha-beta pruning
// over canonical positions, and the move picker built on top of it.
package search

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/eval"
)

// Scores used by TerminalMateScore.
const (
	MateScore = 1e6
	DrawScore = 0.0
)

// TerminalPolicy decides how a node without legal moves is scored.
type TerminalPolicy int

const (
	// TerminalEvaluate scores a node without moves with the evaluator, like
	// any other leaf.
	TerminalEvaluate TerminalPolicy = iota
	// TerminalMateScore scores checkmate as a loss of MateScore plus the
	// remaining depth for the side to move, and stalemate as DrawScore.
	TerminalMateScore
)

// String returns the string representation of a policy.
func (p TerminalPolicy) String() string {
	if p == TerminalMateScore {
		return "mate"
	}
	return "evaluate"
}

// ParseTerminalPolicy converts a policy name into a TerminalPolicy.
func ParseTerminalPolicy(s string) (TerminalPolicy, error) {
	switch s {
	case "evaluate", "eval", "":
		return TerminalEvaluate, nil
	case "mate":
		return TerminalMateScore, nil
	}
	return 0, fmt.Errorf("unknown terminal policy %q: %w", s, errors.ErrInvalidConfig)
}

// Options controls a Searcher.
type Options struct {
	// Depth is the number of plies searched below each candidate move.
	Depth    int
	Terminal TerminalPolicy
	// DisablePruning turns alpha-beta off, giving plain minimax.
	DisablePruning bool
}

// DefaultOptions returns depth 1, evaluator terminal scoring and pruning on.
func DefaultOptions() Options {
	return Options{Depth: 1, Terminal: TerminalEvaluate}
}

// Result describes the move chosen by PickMove.
type Result struct {
	// Move is the chosen successor in the mover's orientation, or nil when
	// the side to move has no legal moves.
	Move *chess.Position
	// Score is the value of Move from the opponent's point of view, so
	// lower is better for the mover.
	Score float64
	// Nodes is the number of minimax nodes visited.
	Nodes int64
	// Candidates is the number of legal moves considered.
	Candidates int
}

// Searcher runs minimax for one game. It is not safe for concurrent use.
type Searcher struct {
	eval  eval.Evaluator
	opts  Options
	rng   *rand.Rand
	nodes int64
}

// NewSearcher creates a searcher. The seed drives the move shuffle, so equal
// seeds reproduce equal games.
func NewSearcher(e eval.Evaluator, opts Options, seed uint64) *Searcher {
	return &Searcher{
		eval: e,
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Options returns the searcher's options.
func (s *Searcher) Options() Options { return s.opts }

// Nodes returns the total number of nodes visited so far.
func (s *Searcher) Nodes() int64 { return s.nodes }

// Minimax returns the value of pos searched to depth. pos is oriented for
// the maximizing side; maximizing reports whether that side is to move.
func (s *Searcher) Minimax(pos *chess.Position, depth int, maximizing bool) (float64, error) {
	return s.minimax(pos, depth, maximizing, -math.MaxFloat64, math.MaxFloat64)
}

func (s *Searcher) minimax(pos *chess.Position, depth int, maximizing bool, alpha, beta float64) (float64, error) {
	s.nodes++
	if depth <= 0 {
		return s.eval.Evaluate(pos)
	}

	children := successors(pos, maximizing)
	if len(children) == 0 {
		return s.terminal(pos, depth, maximizing)
	}

	if maximizing {
		v := -math.MaxFloat64
		for _, child := range children {
			score, err := s.minimax(child, depth-1, false, alpha, beta)
			if err != nil {
				return 0, err
			}
			v = max(v, score)
			if v > beta && !s.opts.DisablePruning {
				break
			}
			alpha = max(alpha, v)
		}
		return v, nil
	}

	v := math.MaxFloat64
	for _, child := range children {
		score, err := s.minimax(child, depth-1, true, alpha, beta)
		if err != nil {
			return 0, err
		}
		v = min(v, score)
		if v < alpha && !s.opts.DisablePruning {
			break
		}
		beta = min(beta, v)
	}
	return v, nil
}

// successors returns the children of pos, all oriented for the maximizing
// side. When the minimizing side is to move, its moves are generated from
// the flipped view and each successor is flipped back.
func successors(pos *chess.Position, maximizing bool) []*chess.Position {
	if maximizing {
		return engine.AllMoves(pos)
	}
	children := engine.AllMoves(pos.Flipped())
	for _, child := range children {
		child.Flip()
	}
	return children
}

// terminal scores a node where the side to move has no legal moves.
func (s *Searcher) terminal(pos *chess.Position, depth int, maximizing bool) (float64, error) {
	if s.opts.Terminal == TerminalEvaluate {
		return s.eval.Evaluate(pos)
	}

	mover := pos
	if !maximizing {
		mover = pos.Flipped()
	}
	if engine.IsOwnKingSafe(mover) {
		return DrawScore, nil
	}
	// Mates found with more depth left are nearer, so they score further out.
	mate := MateScore + float64(depth)
	if maximizing {
		return -mate, nil
	}
	return mate, nil
}

// PickMove chooses a successor of pos for its own side. Candidates are
// shuffled, each is scored by the opponent's best reply searched to
// Options.Depth, and the lowest score wins; ties keep the earlier candidate.
func (s *Searcher) PickMove(pos *chess.Position) (Result, error) {
	start := s.nodes
	moves := engine.AllMoves(pos)
	result := Result{Candidates: len(moves)}
	if len(moves) == 0 {
		return result, nil
	}

	s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	for _, move := range moves {
		score, err := s.Minimax(move.Flipped(), s.opts.Depth, true)
		if err != nil {
			return Result{}, err
		}
		if result.Move == nil || score < result.Score {
			result.Move, result.Score = move, score
		}
	}
	result.Nodes = s.nodes - start
	return result, nil
}

// RandomMove returns a uniformly chosen legal successor, or nil when there
// is none.
func (s *Searcher) RandomMove(pos *chess.Position) *chess.Position {
	moves := engine.AllMoves(pos)
	if len(moves) == 0 {
		return nil
	}
	return moves[s.rng.Intn(len(moves))]
}
