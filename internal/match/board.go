package match

import (
	"fmt"
	"io"
	"unicode"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/engine"
)

// RenderBoard writes pos as seen by the side to move, with White pieces in
// upper case and rank and file labels. A king in check is named below the
// board.
func RenderBoard(w io.Writer, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		rank := engine.SquareName(pos, chess.Sq(0, row))[1]
		fmt.Fprintf(w, "%c ", rank)
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(w, " %c", pieceRune(pos, pos.Squares[row][col]))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a b c d e f g h")
	if engine.IsSquareAttacked(pos, pos.OwnKing) {
		fmt.Fprintf(w, "Check on %s\n", engine.SquareName(pos, pos.OwnKing))
	}
}

// pieceRune returns the display letter of piece in pos.
func pieceRune(pos *chess.Position, piece chess.Piece) rune {
	if piece == chess.Empty {
		return '.'
	}
	letter := rune(piece.Kind().Letter())
	white := piece.IsOwn() == (pos.ToMove == chess.White)
	if white {
		return unicode.ToUpper(letter)
	}
	return letter
}
