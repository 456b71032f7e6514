package rules

// GameStatus is where a game is in its lifecycle.
type GameStatus string

const (
	// GameStatusNotStarted is a fresh game waiting for the first input
	GameStatusNotStarted GameStatus = "not-started"
	// GameStatusRunning represents a running game
	GameStatusRunning GameStatus = "running"
	// GameStatusOver represents a game that ended in a collision
	GameStatusOver GameStatus = "over"
	// GameStatusWon represents a game where the snake filled the board
	GameStatusWon GameStatus = "won"
)

// Finished reports whether no more ticks will be processed.
func (s GameStatus) Finished() bool {
	return s == GameStatusOver || s == GameStatusWon
}
