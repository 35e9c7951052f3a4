package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/flipchess-go/internal/match"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Reason     string            `json:"reason,omitempty"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// RecordToJSON converts a finished game to JSON format.
func RecordToJSON(round int, rec *match.Record, event string) *JSONGame {
	roster, extra := gameTags(round, rec, event)
	tags := make(map[string]string, len(roster)+len(extra))
	for i, tag := range SevenTagRoster {
		tags[tag] = roster[i]
	}
	for tag, value := range extra {
		tags[tag] = value
	}

	return &JSONGame{
		Tags:       tags,
		Moves:      convertMoveList(rec),
		Result:     rec.Result.String(),
		Reason:     rec.Reason,
		PlyCount:   rec.Plies,
		InitialFEN: rec.StartFEN,
		FinalFEN:   rec.FinalFEN,
	}
}

// convertMoveList numbers the moves of a game.
func convertMoveList(rec *match.Record) []JSONMove {
	moves := make([]JSONMove, 0, len(rec.Moves))
	moveNum := 1
	isWhite := !blackStarts(rec)
	for _, move := range rec.Moves {
		moves = append(moves, JSONMove{MoveNumber: moveNum, Color: colorName(isWhite), UCI: move})
		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return moves
}

// colorName returns the JSON name of a side.
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

// encodeJSON writes v indented.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
