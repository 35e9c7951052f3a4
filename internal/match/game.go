// Package match plays games between players over canonical positions.
package match

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/search"
)

// Result is the outcome of a game.
type Result int

const (
	Unfinished Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN result token.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// winFor returns the result of a game won by c.
func winFor(c chess.Colour) Result {
	if c == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Reasons a game ends.
const (
	ReasonCheckmate   = "checkmate"
	ReasonStalemate   = "stalemate"
	ReasonMaterial    = "insufficient material"
	ReasonPlyLimit    = "ply limit"
	ReasonResignation = "resignation"
)

// Record is a finished game.
type Record struct {
	ID    uuid.UUID
	White string
	Black string

	StartFEN string   // position the game was played from
	Moves    []string // long algebraic, in play order
	Result   Result
	Reason   string
	Plies    int

	// FinalFEN and Final describe the last position, oriented for the side
	// to move.
	FinalFEN string
	Final    *chess.Position
}

// Summary returns a one-line description of the game.
func (r *Record) Summary() string {
	return fmt.Sprintf("%s %s vs %s: %s (%s) after %d plies",
		r.ID, r.White, r.Black, r.Result, r.Reason, r.Plies)
}

// Game plays one game between two players.
type Game struct {
	ID    uuid.UUID
	White Player
	Black Player
	// MaxPlies stops the game unfinished; 0 means no limit.
	MaxPlies int
	// Log receives a summary at verbosity 1 and every move at verbosity 2.
	Log       io.Writer
	Verbosity int
}

// NewGame creates a game with a fresh ID and logging disabled.
func NewGame(white, black Player) *Game {
	return &Game{
		ID:    uuid.New(),
		White: white,
		Black: black,
		Log:   io.Discard,
	}
}

// player returns the player for colour c.
func (g *Game) player(c chess.Colour) Player {
	if c == chess.White {
		return g.White
	}
	return g.Black
}

// Play runs the game from start, which must be oriented for the side to
// move. start is not modified. A player error aborts the game and is
// returned as a *errors.GameError alongside the partial record.
func (g *Game) Play(start *chess.Position) (*Record, error) {
	rec := &Record{
		ID:       g.ID,
		White:    g.White.Name(),
		Black:    g.Black.Name(),
		StartFEN: engine.PositionToFEN(start),
	}

	pos := start.Clone()
	for {
		if done := g.adjudicate(pos, rec); done {
			break
		}

		mover := pos.ToMove
		next, err := g.player(mover).Choose(pos)
		if err != nil {
			g.finish(rec, pos)
			return rec, &errors.GameError{Err: err, GameID: g.ID.String(), Ply: rec.Plies + 1}
		}
		if next == nil {
			rec.Result = winFor(mover.Opposite())
			rec.Reason = ReasonResignation
			break
		}

		move := engine.MoveString(pos, next)
		if !isSuccessor(pos, next) {
			g.finish(rec, pos)
			return rec, &errors.GameError{Err: errors.ErrIllegalMove, GameID: g.ID.String(), Ply: rec.Plies + 1, MoveText: move}
		}

		rec.Moves = append(rec.Moves, move)
		rec.Plies++
		if g.Verbosity > 1 {
			g.logPly(rec.Plies, mover, move)
		}
		pos = next.Flip()
	}

	g.finish(rec, pos)
	if g.Verbosity > 0 {
		fmt.Fprintln(g.Log, rec.Summary())
	}
	return rec, nil
}

// searchReporter is implemented by players that can describe their last search.
type searchReporter interface {
	Last() search.Result
}

// logPly writes one played move, with search details for bot movers.
func (g *Game) logPly(ply int, mover chess.Colour, move string) {
	if bot, ok := g.player(mover).(searchReporter); ok {
		last := bot.Last()
		fmt.Fprintf(g.Log, "%s ply %d %s: %s (score %.2f, %d nodes, %d candidates)\n",
			g.ID, ply, mover, move, last.Score, last.Nodes, last.Candidates)
		return
	}
	fmt.Fprintf(g.Log, "%s ply %d %s: %s\n", g.ID, ply, mover, move)
}

// adjudicate ends the game if pos is decided or the ply limit is reached.
func (g *Game) adjudicate(pos *chess.Position, rec *Record) bool {
	switch engine.Status(pos) {
	case engine.Checkmate:
		rec.Result = winFor(pos.ToMove.Opposite())
		rec.Reason = ReasonCheckmate
		return true
	case engine.Stalemate:
		rec.Result = Draw
		rec.Reason = ReasonStalemate
		return true
	}
	if engine.HasInsufficientMaterial(pos) {
		rec.Result = Draw
		rec.Reason = ReasonMaterial
		return true
	}
	if g.MaxPlies > 0 && rec.Plies >= g.MaxPlies {
		rec.Result = Unfinished
		rec.Reason = ReasonPlyLimit
		return true
	}
	return false
}

// finish records the final position.
func (g *Game) finish(rec *Record, pos *chess.Position) {
	rec.Final = pos
	rec.FinalFEN = engine.PositionToFEN(pos)
}

// isSuccessor reports whether next is one of the legal moves of pos.
func isSuccessor(pos, next *chess.Position) bool {
	for _, m := range engine.AllMoves(pos) {
		if m.Equal(next) {
			return true
		}
	}
	return false
}
