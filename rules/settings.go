package rules

import (
	"time"

	"github.com/pkg/errors"
)

// Settings are the fixed parameters of a game. They do not change while a
// game is played.
type Settings struct {
	Size             int32
	InitialSnake     []Point
	InitialFood      Point
	InitialDirection Direction
	FoodReward       int64
	InitialSpeed     time.Duration
	SpeedStep        time.Duration
	MinSpeed         time.Duration
}

// DefaultSettings is a 12x12 board with a single segment snake in the middle
// that starts out heading up.
func DefaultSettings() Settings {
	return Settings{
		Size:             12,
		InitialSnake:     []Point{{X: 6, Y: 6}},
		InitialFood:      Point{X: 3, Y: 3},
		InitialDirection: Up,
		FoodReward:       10,
		InitialSpeed:     250 * time.Millisecond,
		SpeedStep:        5 * time.Millisecond,
		MinSpeed:         120 * time.Millisecond,
	}
}

// Validate checks the settings describe a playable game.
func (s Settings) Validate() error {
	if s.Size < 2 {
		return errors.Errorf("rules: board size %d is too small", s.Size)
	}
	if len(s.InitialSnake) == 0 {
		return errors.New("rules: initial snake is empty")
	}
	for i, p := range s.InitialSnake {
		if !p.InBounds(s.Size) {
			return errors.Errorf("rules: initial snake segment %v is off the board", p)
		}
		if containsPoint(s.InitialSnake[:i], p) {
			return errors.Errorf("rules: initial snake overlaps itself at %v", p)
		}
	}
	if !s.InitialFood.InBounds(s.Size) {
		return errors.Errorf("rules: initial food %v is off the board", s.InitialFood)
	}
	if containsPoint(s.InitialSnake, s.InitialFood) {
		return errors.Errorf("rules: initial food %v is on the snake", s.InitialFood)
	}
	if !s.InitialDirection.Valid() {
		return errors.New("rules: initial direction is not a unit step")
	}
	if s.FoodReward < 0 {
		return errors.New("rules: food reward must not be negative")
	}
	if s.InitialSpeed <= 0 || s.MinSpeed <= 0 {
		return errors.New("rules: speeds must be positive")
	}
	if s.SpeedStep < 0 {
		return errors.New("rules: speed step must not be negative")
	}
	if s.MinSpeed > s.InitialSpeed {
		return errors.Errorf("rules: min speed %v is slower than initial speed %v", s.MinSpeed, s.InitialSpeed)
	}
	return nil
}
