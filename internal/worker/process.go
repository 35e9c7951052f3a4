package worker

import (
	"github.com/lgbarn/flipchess-go/internal/hashing"
	"github.com/lgbarn/flipchess-go/internal/match"
)

// GameFactory builds the game for a work item. Each call must return a game
// with its own players, so that games share no mutable state.
type GameFactory func(index int) *match.Game

// PlayGames returns a ProcessFunc that plays each work item with a game from
// newGame. When detector is non-nil, finished games are checked for exact
// repeats of earlier games.
func PlayGames(newGame GameFactory, detector *hashing.ThreadSafeDuplicateDetector) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		rec, err := newGame(item.Index).Play(item.Start)
		result := ProcessResult{Index: item.Index, Record: rec, Error: err}
		if err == nil && detector != nil {
			result.Duplicate = detector.CheckAndAdd(hashing.NewGameSignature(rec.Final, rec.Moves))
		}
		return result
	}
}
