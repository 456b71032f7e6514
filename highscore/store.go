// Package highscore persists the best score between sessions. Only a single
// integer per key is ever stored and the stored value never goes down.
package highscore

import (
	"context"
	"errors"
	"sync"
)

// DefaultKey is the key the game stores its high score under.
const DefaultKey = "snake-high-score"

var (
	// ErrNotFound is returned when no score has been stored for a key.
	ErrNotFound = errors.New("highscore: score not found")
	// ErrNegativeScore is returned when asked to store a score below zero.
	ErrNegativeScore = errors.New("highscore: score must not be negative")
)

// Store is the interface to the backend store.
type Store interface {
	// GetHighScore returns the stored score or ErrNotFound.
	GetHighScore(ctx context.Context, key string) (int64, error)
	// PutHighScore stores score if it beats the stored value and returns
	// whichever is now stored.
	PutHighScore(ctx context.Context, key string, score int64) (int64, error)
	// DeleteHighScore removes the score for key. Deleting a missing key is
	// not an error.
	DeleteHighScore(ctx context.Context, key string) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		scores: map[string]int64{},
	}
}

type inmem struct {
	scores map[string]int64
	lock   sync.Mutex
}

func (in *inmem) GetHighScore(ctx context.Context, key string) (int64, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.scores[key]; ok {
		return s, nil
	}
	return 0, ErrNotFound
}

func (in *inmem) PutHighScore(ctx context.Context, key string, score int64) (int64, error) {
	if score < 0 {
		return 0, ErrNegativeScore
	}

	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.scores[key]; ok && s >= score {
		return s, nil
	}
	in.scores[key] = score
	return score, nil
}

func (in *inmem) DeleteHighScore(ctx context.Context, key string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	delete(in.scores, key)
	return nil
}
