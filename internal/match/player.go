package match

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/eval"
	"github.com/lgbarn/flipchess-go/internal/search"
)

// Player chooses moves for one side. pos is oriented for the player and
// the returned position must be one of engine.AllMoves(pos). A nil
// position with a nil error resigns.
type Player interface {
	Name() string
	Choose(pos *chess.Position) (*chess.Position, error)
}

// SearchPlayer picks moves with a minimax searcher.
type SearchPlayer struct {
	searcher *search.Searcher
	last     search.Result
}

// NewSearchPlayer creates a player driven by s.
func NewSearchPlayer(s *search.Searcher) *SearchPlayer {
	return &SearchPlayer{searcher: s}
}

// Name returns "bot" with the search depth.
func (p *SearchPlayer) Name() string {
	return fmt.Sprintf("bot(depth %d)", p.searcher.Options().Depth)
}

// Choose runs the search and returns its move.
func (p *SearchPlayer) Choose(pos *chess.Position) (*chess.Position, error) {
	result, err := p.searcher.PickMove(pos)
	if err != nil {
		return nil, err
	}
	p.last = result
	return result.Move, nil
}

// Last returns the result of the most recent search.
func (p *SearchPlayer) Last() search.Result {
	return p.last
}

// RandomPlayer plays uniformly random legal moves.
type RandomPlayer struct {
	searcher *search.Searcher
}

// NewRandomPlayer creates a random mover with a reproducible seed.
func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{searcher: search.NewSearcher(eval.MaterialEvaluator{}, search.DefaultOptions(), seed)}
}

// Name returns "random".
func (p *RandomPlayer) Name() string { return "random" }

// Choose returns a random legal move.
func (p *RandomPlayer) Choose(pos *chess.Position) (*chess.Position, error) {
	return p.searcher.RandomMove(pos), nil
}

// HumanPlayer reads long algebraic moves from a terminal.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanPlayer creates a player reading moves from r and prompting on w.
func NewHumanPlayer(r io.Reader, w io.Writer) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewScanner(r), out: w}
}

// Name returns "human".
func (p *HumanPlayer) Name() string { return "human" }

// Choose shows the board and the legal moves, then reads moves until one
// is legal. "quit" or "resign" resigns; end of input aborts the game.
func (p *HumanPlayer) Choose(pos *chess.Position) (*chess.Position, error) {
	RenderBoard(p.out, pos)
	fmt.Fprintf(p.out, "Legal moves: %s\n", strings.Join(engine.MoveStrings(pos), " "))

	for {
		fmt.Fprintf(p.out, "%s to move: ", pos.ToMove)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, errors.Wrap(err, "reading move")
			}
			return nil, fmt.Errorf("input closed: %w", errors.ErrGameAborted)
		}

		text := strings.TrimSpace(p.in.Text())
		switch strings.ToLower(text) {
		case "":
			continue
		case "quit", "resign":
			return nil, nil
		}

		next, err := engine.FindMove(pos, text)
		if err != nil {
			fmt.Fprintf(p.out, "Illegal move %s\n", text)
			continue
		}
		return next, nil
	}
}
