package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/flipchess-go/internal/config"
	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/match"
)

// DefaultEvent is the Event tag of self-play games.
const DefaultEvent = "flipchess self-play"

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (line, PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output. round numbers games
	// from 1.
	WriteGame(round int, rec *match.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured format.
func NewGameWriter(cfg *config.OutputConfig, w io.Writer) (GameWriter, error) {
	switch cfg.Format {
	case config.LineFormat, "":
		return NewLineWriter(w), nil
	case config.PGNFormat:
		return NewPGNWriter(w, cfg.MaxLineLength), nil
	case config.JSONFormat:
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q: %w", cfg.Format, errors.ErrInvalidConfig)
}

// LineWriter writes each game on one line.
type LineWriter struct {
	w io.Writer
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteGame writes the one-line form of a game.
func (lw *LineWriter) WriteGame(round int, rec *match.Record) error {
	_, err := fmt.Fprintln(lw.w, formatLine(round, rec))
	return err
}

// Flush is a no-op; lines are written immediately.
func (lw *LineWriter) Flush() error { return nil }

// Close is a no-op.
func (lw *LineWriter) Close() error { return nil }

// PGNWriter writes games in PGN format with long algebraic moves.
type PGNWriter struct {
	w             io.Writer
	maxLineLength int
	Event         string
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, maxLineLength int) *PGNWriter {
	return &PGNWriter{
		w:             w,
		maxLineLength: maxLineLength,
		Event:         DefaultEvent,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(round int, rec *match.Record) error {
	outputTags(pw.w, round, rec, pw.Event)
	// Blank line between tags and moves
	fmt.Fprintln(pw.w)
	outputMoves(pw.w, rec, pw.maxLineLength)
	// Blank line between games
	_, err := fmt.Fprintln(pw.w)
	return err
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
	Event  string
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
		Event: DefaultEvent,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
		Event:  DefaultEvent,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(round int, rec *match.Record) error {
	jsonGame := RecordToJSON(round, rec, jw.Event)
	if jw.single {
		return encodeJSON(jw.w, jsonGame)
	}

	// Buffer for batch output
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
