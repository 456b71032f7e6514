// Package sqlstore keeps high scores in postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/highscore"
	"github.com/pkg/errors"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	key VARCHAR(255) PRIMARY KEY,
	score BIGINT NOT NULL,
	updated TIMESTAMP NOT NULL DEFAULT now()
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// GetHighScore returns the stored score or highscore.ErrNotFound.
func (s *Store) GetHighScore(ctx context.Context, key string) (int64, error) {
	var score int64
	r := s.db.QueryRowContext(ctx, "SELECT score FROM high_scores WHERE key=$1", key)
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, highscore.ErrNotFound
		}
		return 0, errors.Wrap(err, "unable to get score")
	}
	return score, nil
}

// PutHighScore does a conditional insert or update in a single statement.
// - If `key` doesn't exist insert the score.
// - If `key` exists keep the greater of the stored and the new score.
func (s *Store) PutHighScore(ctx context.Context, key string, score int64) (int64, error) {
	if score < 0 {
		return 0, highscore.ErrNegativeScore
	}

	var stored int64
	r := s.db.QueryRowContext(ctx, `
	INSERT INTO high_scores (key, score, updated) VALUES ($1, $2, now())
	ON CONFLICT (key)
	DO UPDATE SET score=GREATEST(high_scores.score, EXCLUDED.score), updated=now()
	RETURNING score`,
		key, score,
	)
	if err := r.Scan(&stored); err != nil {
		return 0, errors.Wrap(err, "unable to put score")
	}
	return stored, nil
}

// DeleteHighScore removes the score for key.
func (s *Store) DeleteHighScore(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM high_scores WHERE key=$1", key)
	if err != nil {
		return errors.Wrap(err, "unable to delete score")
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
