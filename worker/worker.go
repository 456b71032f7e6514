// Package worker drives a game in real time. It is the only goroutine that
// touches the game session: ticks and player commands are serialized through
// a single select loop.
package worker

import (
	"context"

	"github.com/battlesnakeio/arcade/game"
	"github.com/battlesnakeio/arcade/rules"
	log "github.com/sirupsen/logrus"
)

// Worker plays a single session until its context is done.
type Worker struct {
	Session  *game.Session
	Commands <-chan game.Command

	// Render is called with a fresh snapshot after every change. An error
	// from Render stops the worker.
	Render func(rules.Snapshot) error

	// Recorder, when set, receives every new high score.
	Recorder *Recorder
}

// Run will run the worker in a loop. It returns when the context is done,
// when the command channel is closed (nil error) or when rendering fails.
func (w *Worker) Run(ctx context.Context) error {
	if w.Recorder != nil {
		w.Session.OnHighScore = w.Recorder.Record
	}

	ticker := &tickSource{}
	defer ticker.release()

	if err := w.render(); err != nil {
		return err
	}
	ticker.sync(w.Session)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-w.Commands:
			if !ok {
				return nil
			}
			if !w.Session.Handle(cmd) {
				continue
			}
			commandsApplied.WithLabelValues(cmd.String()).Inc()
		case <-ticker.C():
			w.tick()
		}

		if ticker.sync(w.Session) {
			log.WithFields(log.Fields{
				"GameID":    w.Session.ID(),
				"Speed":     w.Session.Speed(),
				"Direction": w.Session.Pending(),
			}).Debug("ticker reset")
		}
		if err := w.render(); err != nil {
			return err
		}
	}
}

func (w *Worker) tick() {
	before := w.Session.Snapshot()
	if err := w.Session.Tick(); err != nil {
		log.WithError(err).
			WithField("GameID", w.Session.ID()).
			Warn("tick failed")
		return
	}
	ticks.Inc()

	after := w.Session.Snapshot()
	if after.Score > before.Score {
		foodEaten.Inc()
	}
	if after.Status.Finished() {
		cause := ""
		if after.Death != nil {
			cause = after.Death.Cause
		}
		gamesFinished.WithLabelValues(string(after.Status), cause).Inc()
	}
}

func (w *Worker) render() error {
	if w.Render == nil {
		return nil
	}
	return w.Render(w.Session.Snapshot())
}
