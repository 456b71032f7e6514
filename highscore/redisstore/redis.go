// Package redisstore keeps high scores in redis, one string key per score.
package redisstore

import (
	"context"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

const (
	keyPrefix = "snake:highscore:"
	// maxTxRetries bounds optimistic retries when another client updates
	// the same score concurrently.
	maxTxRetries = 100
)

// Store is a redis backed highscore.Store.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}

// GetHighScore returns the stored score or highscore.ErrNotFound.
func (rs *Store) GetHighScore(ctx context.Context, key string) (int64, error) {
	score, err := rs.client.WithContext(ctx).Get(scoreKey(key)).Int64()
	if err == redis.Nil {
		return 0, highscore.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get score")
	}
	return score, nil
}

// PutHighScore raises the stored score with a WATCH / MULTI transaction so
// concurrent writers never lower it.
func (rs *Store) PutHighScore(ctx context.Context, key string, score int64) (int64, error) {
	if score < 0 {
		return 0, highscore.ErrNegativeScore
	}

	client := rs.client.WithContext(ctx)
	k := scoreKey(key)
	var stored int64

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(k).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if err == nil && current >= score {
			stored = current
			return nil
		}
		_, err = tx.Pipelined(func(pipe redis.Pipeliner) error {
			pipe.Set(k, score, 0)
			return nil
		})
		if err == nil {
			stored = score
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := client.Watch(txf, k)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return 0, errors.Wrap(err, "unable to put score")
		}
		return stored, nil
	}
	return 0, errors.New("unable to put score: too much contention")
}

// DeleteHighScore removes the score for key.
func (rs *Store) DeleteHighScore(ctx context.Context, key string) error {
	err := rs.client.WithContext(ctx).Del(scoreKey(key)).Err()
	if err != nil {
		return errors.Wrap(err, "unable to delete score")
	}
	return nil
}

func scoreKey(key string) string {
	return keyPrefix + key
}
