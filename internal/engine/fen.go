// Package engine implements the chess rules over canonical positions: the
// line primitive, king safety, move generation, game status, FEN and
// move notation.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenKinds maps lowercase FEN letters to kinds.
var fenKinds = map[rune]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// NewPositionFromFEN creates a position from a FEN string, oriented for the
// side to move. The halfmove and fullmove fields are accepted and ignored.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	// Built from White's point of view, flipped at the end if needed.
	pos := chess.NewEmptyPosition(chess.White)
	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	castling := "-"
	if len(parts) >= 3 {
		castling = parts[2]
	}
	if err := parseCastling(pos, castling); err != nil {
		return nil, err
	}

	if len(parts) >= 4 {
		if err := parseEnPassant(pos, parts[3], toMove); err != nil {
			return nil, err
		}
	}

	if toMove == chess.Black {
		pos.Flip()
	}

	// The side that just moved may not have left its king attacked.
	if !IsOwnKingSafe(pos.Flipped()) {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}
	return pos, nil
}

// MustPositionFromFEN is NewPositionFromFEN for trusted constants; it panics
// on error.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the piece placement field from White's view.
func parsePiecePlacement(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(rows), errors.ErrInvalidFEN)
	}

	for row, text := range rows {
		col := 0
		for _, c := range text {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind, ok := fenKinds[unicode.ToLower(c)]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			if kind == chess.Pawn && (row == 0 || row == chess.LastIndex) {
				return fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidFEN)
			}
			piece := chess.Own(kind)
			if unicode.IsLower(c) {
				piece = chess.Opp(kind)
			}
			pos.Set(chess.Sq(col, row), piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	own, opp := pos.CountKings()
	if own != 1 || opp != 1 {
		return fmt.Errorf("expected one king per side, got %d white and %d black: %w", own, opp, errors.ErrInvalidFEN)
	}
	pos.RefreshKings()
	return nil
}

// parseCastling maps the availability letters onto moved flags. White is
// the own side at this point.
func parseCastling(pos *chess.Position, field string) error {
	var white, black struct{ king, queen bool }
	if field != "-" {
		for _, c := range field {
			switch c {
			case 'K':
				white.king = true
			case 'Q':
				white.queen = true
			case 'k':
				black.king = true
			case 'q':
				black.queen = true
			default:
				return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
			}
		}
	}

	whiteHome := chess.Sq(chess.KingHomeCol, chess.OwnBackRow)
	blackHome := chess.Sq(chess.KingHomeCol, 0)
	pos.Castling = chess.CastlingRights{
		OwnKingMoved:     (!white.king && !white.queen) || pos.OwnKing != whiteHome,
		OppKingMoved:     (!black.king && !black.queen) || pos.OppKing != blackHome,
		OwnEastRookMoved: !white.king,
		OwnWestRookMoved: !white.queen,
		OppEastRookMoved: !black.king,
		OppWestRookMoved: !black.queen,
	}
	return nil
}

// parseEnPassant parses the target square, which must sit behind a pawn of
// the side that just moved.
func parseEnPassant(pos *chess.Position, field string, toMove chess.Colour) error {
	if field == "-" {
		return nil
	}
	sq, err := parseSquareName(field)
	if err != nil {
		return err
	}
	// White's view: a Black double push lands on row 3, a White one on row 4.
	wantRow, pawn, dr := 2, chess.Opp(chess.Pawn), 1
	if toMove == chess.Black {
		wantRow, pawn, dr = 5, chess.Own(chess.Pawn), -1
	}
	if sq.Row != wantRow || pos.Get(sq.Offset(0, dr)) != pawn {
		return fmt.Errorf("impossible en passant square %s: %w", field, errors.ErrInvalidFEN)
	}
	pos.EnPassant = sq
	return nil
}

// parseSquareName converts "e3" into White's-view grid coordinates.
func parseSquareName(name string) (chess.Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return chess.NoSquare, fmt.Errorf("invalid square %q: %w", name, errors.ErrInvalidFEN)
	}
	return chess.Sq(int(name[0]-'a'), chess.BoardSize-int(name[1]-'0')), nil
}

// PositionToFEN converts a position to a FEN string. The clocks are not
// tracked and are always written as "0 1".
func PositionToFEN(pos *chess.Position) string {
	white := pos
	if pos.ToMove == chess.Black {
		white = pos.Flipped()
	}

	var sb strings.Builder
	writePiecePlacement(&sb, white)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, white.Castling)
	sb.WriteByte(' ')
	if white.EnPassant == chess.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(whiteSquareName(white.EnPassant))
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// writePiecePlacement writes the grid of a White-oriented position.
func writePiecePlacement(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := piece.Kind().Letter()
			if piece.IsOwn() {
				letter = byte(unicode.ToUpper(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.LastIndex {
			sb.WriteByte('/')
		}
	}
}

// writeCastling writes availability for White-oriented rights.
func writeCastling(sb *strings.Builder, c chess.CastlingRights) {
	start := sb.Len()
	if !c.OwnKingMoved && !c.OwnEastRookMoved {
		sb.WriteByte('K')
	}
	if !c.OwnKingMoved && !c.OwnWestRookMoved {
		sb.WriteByte('Q')
	}
	if !c.OppKingMoved && !c.OppEastRookMoved {
		sb.WriteByte('k')
	}
	if !c.OppKingMoved && !c.OppWestRookMoved {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}
