package highscore_test

import (
	"context"
	"testing"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/highscore/testsuite"
	"github.com/stretchr/testify/require"
)

func TestInMemStore(t *testing.T) {
	testsuite.Suite(t, highscore.InMemStore(), func() {})
}

func TestInstrumentedStore(t *testing.T) {
	testsuite.Suite(t, highscore.InstrumentStore(highscore.InMemStore()), func() {})
}

type failingStore struct{ err error }

func (f failingStore) GetHighScore(context.Context, string) (int64, error) { return 0, f.err }
func (f failingStore) PutHighScore(context.Context, string, int64) (int64, error) {
	return 0, f.err
}
func (f failingStore) DeleteHighScore(context.Context, string) error { return f.err }

func TestInstrumentedStorePassesErrors(t *testing.T) {
	s := highscore.InstrumentStore(failingStore{err: highscore.ErrNotFound})
	_, err := s.GetHighScore(context.Background(), highscore.DefaultKey)
	require.Equal(t, highscore.ErrNotFound, err)
	_, err = s.PutHighScore(context.Background(), highscore.DefaultKey, 1)
	require.Equal(t, highscore.ErrNotFound, err)
	require.Equal(t, highscore.ErrNotFound, s.DeleteHighScore(context.Background(), highscore.DefaultKey))
}
