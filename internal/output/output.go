// Package output formats finished games as result lines, PGN or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/match"
)

// SevenTagRoster lists the tags every PGN game carries, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// gameTags returns the tags of a game: the roster values followed by the
// extra tags sorted by name.
func gameTags(round int, rec *match.Record, event string) (roster []string, extra map[string]string) {
	roster = []string{event, "?", "????.??.??", fmt.Sprint(round), rec.White, rec.Black, rec.Result.String()}

	extra = map[string]string{
		"GameId":      rec.ID.String(),
		"PlyCount":    fmt.Sprint(rec.Plies),
		"Termination": rec.Reason,
	}
	if rec.StartFEN != "" && rec.StartFEN != engine.InitialFEN {
		extra["SetUp"] = "1"
		extra["FEN"] = rec.StartFEN
	}
	return roster, extra
}

// outputTags writes the tag section of a game.
func outputTags(w io.Writer, round int, rec *match.Record, event string) {
	roster, extra := gameTags(round, rec, event)
	for i, tag := range SevenTagRoster {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(roster[i]))
	}

	names := make([]string, 0, len(extra))
	for tag := range extra {
		names = append(names, tag)
	}
	sort.Strings(names)
	for _, tag := range names {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(extra[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// blackStarts reports whether the game's first move was Black's.
func blackStarts(rec *match.Record) bool {
	fields := strings.Fields(rec.StartFEN)
	return len(fields) > 1 && fields[1] == "b"
}

// outputMoves writes the numbered move text followed by the result.
func outputMoves(w io.Writer, rec *match.Record, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := 1
	isWhite := !blackStarts(rec)
	for i, move := range rec.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(move)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.Write(rec.Result.String())
	ow.NewLine()
}

// formatLine returns the one-line form of a game: number, ID, result,
// reason and moves.
func formatLine(round int, rec *match.Record) string {
	return fmt.Sprintf("%d %s %s (%s): %s", round, rec.ID, rec.Result, rec.Reason, strings.Join(rec.Moves, " "))
}
