package rules

import "time"

// State is everything needed to play one game.
//
// Direction is the heading the snake moved in on the last tick, Pending is
// the heading the next tick will use. Steer requests are checked against
// Direction so that two quick key presses cannot fold the snake back onto
// itself inside a single tick.
type State struct {
	Turn      int64
	Snake     []Point
	Food      Point
	Direction Direction
	Pending   Direction
	Score     int64
	HighScore int64
	Speed     time.Duration
	Status    GameStatus
	Death     *Death
}

// NewState builds the initial state for a game. The high score is carried in
// from whatever came before.
func NewState(settings Settings, highScore int64) *State {
	snake := make([]Point, len(settings.InitialSnake))
	copy(snake, settings.InitialSnake)
	return &State{
		Snake:     snake,
		Food:      settings.InitialFood,
		Direction: settings.InitialDirection,
		Pending:   settings.InitialDirection,
		HighScore: highScore,
		Speed:     settings.InitialSpeed,
		Status:    GameStatusNotStarted,
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Snake = make([]Point, len(s.Snake))
	copy(c.Snake, s.Snake)
	if s.Death != nil {
		d := *s.Death
		c.Death = &d
	}
	return &c
}

// Steer records a direction change for the next tick. Only 90 degree turns
// relative to the current heading are accepted.
func (s *State) Steer(dir Direction) bool {
	if !s.Direction.Perpendicular(dir) {
		return false
	}
	s.Pending = dir
	return true
}

// Aim sets the heading of a game that has not moved yet. Any direction is
// accepted except one that runs the head straight into the next segment.
func (s *State) Aim(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	if len(s.Snake) > 1 && s.Snake[0].Add(dir).Equal(s.Snake[1]) {
		return false
	}
	s.Pending = dir
	return true
}
