package reference

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/lgbarn/flipchess-go/internal/engine"
)

// GoosePerft counts leaf nodes to depth with the goosemg generator, a
// second reference that shares no code with dragontoothmg.
func GoosePerft(fen string, depth int) (uint64, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return 0, err
	}
	b, err := goosemg.ParseFEN(engine.PositionToFEN(pos))
	if err != nil {
		return 0, fmt.Errorf("goosemg rejected %q: %w", fen, err)
	}
	return goosemg.Perft(b, depth), nil
}
