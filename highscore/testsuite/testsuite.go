// Package testsuite is the shared behaviour test for highscore.Store
// implementations.
package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/arcade/highscore"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreMissing(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// NotFound error thrown.
	_, err := s.GetHighScore(ctx, key)
	require.Equal(t, highscore.ErrNotFound, err)

	// Delete where score doesn't exist returns no error.
	err = s.DeleteHighScore(ctx, key)
	require.Nil(t, err)
}

func testStorePutGet(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	stored, err := s.PutHighScore(ctx, key, 30)
	require.Nil(t, err)
	require.Equal(t, int64(30), stored)

	score, err := s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, int64(30), score)

	// Zero is a valid score and distinct from missing.
	zeroKey := key + "-zero"
	_, err = s.PutHighScore(ctx, zeroKey, 0)
	require.Nil(t, err)
	score, err = s.GetHighScore(ctx, zeroKey)
	require.Nil(t, err)
	require.Equal(t, int64(0), score)
}

func testStoreMonotonic(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	_, err := s.PutHighScore(ctx, key, 50)
	require.Nil(t, err)

	// Lower score leaves the stored one in place.
	stored, err := s.PutHighScore(ctx, key, 20)
	require.Nil(t, err)
	require.Equal(t, int64(50), stored)

	score, err := s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, int64(50), score)

	// Higher score replaces it.
	stored, err = s.PutHighScore(ctx, key, 70)
	require.Nil(t, err)
	require.Equal(t, int64(70), stored)

	_, err = s.PutHighScore(ctx, key, -1)
	require.Equal(t, highscore.ErrNegativeScore, err)
}

func testStoreKeysIsolated(t *testing.T, s highscore.Store) {
	a := uuid.NewV4().String()
	b := uuid.NewV4().String()
	ctx := context.Background()

	_, err := s.PutHighScore(ctx, a, 10)
	require.Nil(t, err)
	_, err = s.PutHighScore(ctx, b, 90)
	require.Nil(t, err)

	score, err := s.GetHighScore(ctx, a)
	require.Nil(t, err)
	require.Equal(t, int64(10), score)
}

func testStoreDelete(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	_, err := s.PutHighScore(ctx, key, 40)
	require.Nil(t, err)
	require.Nil(t, s.DeleteHighScore(ctx, key))

	_, err = s.GetHighScore(ctx, key)
	require.Equal(t, highscore.ErrNotFound, err)

	// After a delete a lower score can be stored again.
	stored, err := s.PutHighScore(ctx, key, 5)
	require.Nil(t, err)
	require.Equal(t, int64(5), stored)
}

func testStoreConcurrentPuts(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	wg := sync.WaitGroup{}
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int64) {
			defer wg.Done()
			_, err := s.PutHighScore(ctx, key, score)
			assert.Nil(t, err)
		}(int64(i * 10))
	}
	wg.Wait()

	score, err := s.GetHighScore(ctx, key)
	require.Nil(t, err)
	require.Equal(t, int64(200), score)
}

// Suite will run all tests on a store, reset is called before every test.
func Suite(t *testing.T, s highscore.Store, reset func()) {
	tests := []struct {
		name string
		f    func(*testing.T, highscore.Store)
	}{
		{"Missing", testStoreMissing},
		{"PutGet", testStorePutGet},
		{"Monotonic", testStoreMonotonic},
		{"KeysIsolated", testStoreKeysIsolated},
		{"Delete", testStoreDelete},
		{"ConcurrentPuts", testStoreConcurrentPuts},
	}
	for _, test := range tests {
		reset()
		t.Run(test.name, func(t *testing.T) { test.f(t, s) })
	}
}
