package multiplayer

import "github.com/vovakirdan/tetris-duel/internal/tetris"

// Recorder persists finished games. Sessions call it off the tick loop and
// only log its errors.
type Recorder interface {
	HighScore(mode string) (int, error)
	SaveGameResult(rec GameRecord) error
	SaveMatchResult(rec MatchRecord) error
}

// GameRecord is one field's final tally.
type GameRecord struct {
	MatchID string
	Mode    string
	Player  string
	tetris.GameResult
}

// MatchRecord is the outcome of one versus game.
type MatchRecord struct {
	MatchID string
	Score1  int
	Score2  int
	Winner  string // "P1", "P2" or empty for a draw
	Wins1   int
	Wins2   int
	Ticks   int
}
