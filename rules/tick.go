package rules

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrNotRunning is returned when a tick is requested for a game that is not
// running.
var ErrNotRunning = errors.New("rules: game is not running")

// GameTick runs the game one tick and returns the next state. The previous
// state is not modified, the caller swaps the result in as a whole.
//
// 1. move the snake using the pending direction
// 2. on collision the game is over and nothing else changes
// 3. on food the score, high score and speed are updated and new food is
//    placed; a board with no room for food is a win
func GameTick(settings Settings, last *State, src CellSource) (*State, error) {
	if last == nil {
		return nil, errors.New("rules: invalid state, previous state is nil")
	}
	if last.Status != GameStatusRunning {
		return nil, ErrNotRunning
	}

	next := last.Clone()
	next.Turn = last.Turn + 1

	snake, ate, cause := Move(last.Snake, last.Pending, last.Food, settings.Size)
	if cause != "" {
		next.Status = GameStatusOver
		next.Death = &Death{Turn: next.Turn, Cause: cause}
		log.WithFields(log.Fields{
			"Turn":  next.Turn,
			"Cause": cause,
			"Score": next.Score,
		}).Debug("snake died")
		return next, nil
	}
	next.Snake = snake
	next.Direction = last.Pending
	if !ate {
		return next, nil
	}

	next.Score += settings.FoodReward
	if next.Score > next.HighScore {
		next.HighScore = next.Score
	}
	next.Speed = nextSpeed(last.Speed, settings.SpeedStep, settings.MinSpeed)
	log.WithFields(log.Fields{
		"Turn":  next.Turn,
		"Food":  last.Food,
		"Score": next.Score,
		"Speed": next.Speed,
	}).Debug("snake ate")

	food, err := PlaceFood(settings.Size, next.Snake, src)
	if err == ErrBoardFull {
		next.Status = GameStatusWon
		log.WithFields(log.Fields{
			"Turn":  next.Turn,
			"Score": next.Score,
		}).Debug("board full")
		return next, nil
	}
	if err != nil {
		return nil, err
	}
	next.Food = food
	return next, nil
}

func nextSpeed(speed, step, min time.Duration) time.Duration {
	speed -= step
	if speed < min {
		return min
	}
	return speed
}
