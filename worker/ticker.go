package worker

import (
	"time"

	"github.com/battlesnakeio/arcade/game"
	"github.com/battlesnakeio/arcade/rules"
)

// tickKey is everything the tick interval depends on. A change to any of it
// means the ticker has to be thrown away and made again.
type tickKey struct {
	status rules.GameStatus
	speed  time.Duration
	dir    rules.Direction
}

// tickSource holds at most one ticker, and only while the game is running.
type tickSource struct {
	t   *time.Ticker
	key tickKey
}

// C is the tick channel, nil while no ticker is held so a select on it
// blocks forever.
func (ts *tickSource) C() <-chan time.Time {
	if ts.t == nil {
		return nil
	}
	return ts.t.C
}

// sync releases and reacquires the ticker if the session moved on since the
// last call. It returns whether a new ticker was acquired.
func (ts *tickSource) sync(s *game.Session) bool {
	key := tickKey{
		status: s.Status(),
		speed:  s.Speed(),
		dir:    s.Pending(),
	}
	if key == ts.key {
		return false
	}
	ts.release()
	ts.key = key
	if key.status != rules.GameStatusRunning {
		return false
	}
	ts.t = time.NewTicker(key.speed)
	return true
}

func (ts *tickSource) release() {
	if ts.t != nil {
		ts.t.Stop()
		ts.t = nil
	}
}
