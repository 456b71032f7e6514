// Package game owns a single game of snake. A Session is the only thing that
// mutates game state; callers drive it with commands and ticks and read it
// back through snapshots.
package game

import (
	"time"

	"github.com/battlesnakeio/arcade/rules"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Session holds the state of the game currently being played along with the
// high score that outlives it. A Session is not safe for concurrent use, the
// worker package serializes access to it.
type Session struct {
	settings rules.Settings
	source   rules.CellSource
	state    *rules.State
	id       string

	// OnHighScore is called with the new value every time the high score is
	// beaten.
	OnHighScore func(score int64)
}

// New will initialize a new Session in the not started state.
func New(settings rules.Settings, source rules.CellSource) *Session {
	s := &Session{
		settings: settings,
		source:   source,
	}
	s.reset(0)
	return s
}

func (s *Session) reset(highScore int64) {
	s.state = rules.NewState(s.settings, highScore)
	s.id = uuid.NewV4().String()
}

// ID is the identifier of the current game, it changes on every restart.
func (s *Session) ID() string { return s.id }

// Settings returns the settings the session was created with.
func (s *Session) Settings() rules.Settings { return s.settings }

// Status returns the status of the current game.
func (s *Session) Status() rules.GameStatus { return s.state.Status }

// Speed is the current tick interval.
func (s *Session) Speed() time.Duration { return s.state.Speed }

// Pending is the direction the next tick will move in.
func (s *Session) Pending() rules.Direction { return s.state.Pending }

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int64 { return s.state.HighScore }

// SetHighScore seeds the high score, usually from storage at startup. Lower
// values than the current high score are ignored.
func (s *Session) SetHighScore(score int64) {
	if score > s.state.HighScore {
		s.state.HighScore = score
	}
}

// Snapshot returns a read only copy of the current game.
func (s *Session) Snapshot() rules.Snapshot {
	return s.state.Snapshot(s.settings.Size)
}

// Start begins a game that has not started yet. It returns false if the game
// is already running or finished.
func (s *Session) Start() bool {
	if s.state.Status != rules.GameStatusNotStarted {
		return false
	}
	s.state.Status = rules.GameStatusRunning
	log.WithField("GameID", s.id).Info("game started")
	return true
}

// Restart throws the current game away and sets up a fresh one. The high
// score is kept.
func (s *Session) Restart() {
	log.WithFields(log.Fields{
		"GameID": s.id,
		"Score":  s.state.Score,
		"Status": s.state.Status,
	}).Info("game restarted")
	s.reset(s.state.HighScore)
}

// Turn requests a direction change.
//
// A game that has not started yet starts on its first direction, unless that
// direction points back into the body. A running game only accepts 90 degree turns relative to the way the
// snake last moved. Finished games ignore input. It returns whether the
// request changed anything.
func (s *Session) Turn(dir rules.Direction) bool {
	if !dir.Valid() {
		return false
	}
	switch s.state.Status {
	case rules.GameStatusNotStarted:
		if !s.state.Aim(dir) {
			return false
		}
		s.Start()
		return true
	case rules.GameStatusRunning:
		return s.state.Steer(dir)
	}
	return false
}

// Tick advances a running game by one step. Ticks on a game that is not
// running do nothing and return rules.ErrNotRunning.
func (s *Session) Tick() error {
	next, err := rules.GameTick(s.settings, s.state, s.source)
	if err != nil {
		return err
	}
	prev := s.state
	s.state = next

	if next.HighScore > prev.HighScore && s.OnHighScore != nil {
		s.OnHighScore(next.HighScore)
	}
	if next.Status.Finished() {
		fields := log.Fields{
			"GameID": s.id,
			"Turn":   next.Turn,
			"Score":  next.Score,
			"Status": next.Status,
		}
		if next.Death != nil {
			fields["Cause"] = next.Death.Cause
		}
		log.WithFields(fields).Info("game finished")
	}
	return nil
}
