package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/flipchess-go/internal/chess"
)

// Zobrist keys. Pieces are indexed by real colour, not by own/opponent.
var (
	zobristPiece     [2][7][chess.BoardSize][chess.BoardSize]uint64 // [colour][kind][row][col]
	zobristCastle    [6]uint64                                      // one per CastlingRights flag
	zobristEnPassant [chess.BoardSize]uint64                        // by file
	zobristBlack     uint64                                         // Black to move
)

func init() {
	// Fixed seed: hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for row := range zobristPiece[c][k] {
				for col := range zobristPiece[c][k][row] {
					zobristPiece[c][k][row][col] = rnd.Uint64()
				}
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
	zobristBlack = rnd.Uint64()
}

// Hash returns the Zobrist hash of pos. The board is read from White's
// point of view, so pos and pos.Flipped() differ only by the side-to-move
// key.
func Hash(pos *chess.Position) uint64 {
	white := pos
	if pos.ToMove == chess.Black {
		white = pos.Flipped()
	}

	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := white.Squares[row][col]
			if piece == chess.Empty {
				continue
			}
			colour := chess.Black
			if piece.IsOwn() {
				colour = chess.White
			}
			key ^= zobristPiece[colour][piece.Kind()][row][col]
		}
	}

	for i, moved := range white.Castling.Flags() {
		if moved {
			key ^= zobristCastle[i]
		}
	}
	if white.EnPassant != chess.NoSquare {
		key ^= zobristEnPassant[white.EnPassant.Col]
	}
	if pos.ToMove == chess.Black {
		key ^= zobristBlack
	}
	return key
}
