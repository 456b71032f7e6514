package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// countingStore wraps a store and counts writes. Writes fail while failing
// is set.
type countingStore struct {
	highscore.Store

	mu      sync.Mutex
	puts    []int64
	failing bool
}

var errStoreDown = errors.New("store down")

func (c *countingStore) PutHighScore(ctx context.Context, key string, score int64) (int64, error) {
	c.mu.Lock()
	c.puts = append(c.puts, score)
	failing := c.failing
	c.mu.Unlock()
	if failing {
		return 0, errStoreDown
	}
	return c.Store.PutHighScore(ctx, key, score)
}

func (c *countingStore) GetHighScore(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	failing := c.failing
	c.mu.Unlock()
	if failing {
		return 0, errStoreDown
	}
	return c.Store.GetHighScore(ctx, key)
}

func (c *countingStore) setFailing(f bool) {
	c.mu.Lock()
	c.failing = f
	c.mu.Unlock()
}

func (c *countingStore) writes() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int64(nil), c.puts...)
}

func TestRecorderLoad(t *testing.T) {
	store := &countingStore{Store: highscore.InMemStore()}
	r := NewRecorder(store, "", nil)
	require.Equal(t, highscore.DefaultKey, r.Key)

	require.Equal(t, int64(0), r.Load(context.Background()), "missing score loads as 0")

	_, err := store.PutHighScore(context.Background(), highscore.DefaultKey, 40)
	require.NoError(t, err)
	require.Equal(t, int64(40), r.Load(context.Background()))

	store.setFailing(true)
	require.Equal(t, int64(0), r.Load(context.Background()), "read errors load as 0")
}

func TestRecorderFlushesOnShutdown(t *testing.T) {
	store := &countingStore{Store: highscore.InMemStore()}
	// A limiter that never allows a write keeps everything queued until
	// shutdown.
	r := NewRecorder(store, "shutdown", rate.NewLimiter(0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	r.Record(10)
	r.Record(20)
	r.Record(30)
	time.Sleep(10 * time.Millisecond)
	require.Empty(t, store.writes())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recorder did not stop")
	}

	require.Equal(t, []int64{30}, store.writes(), "only the latest score is written")
	score, err := store.GetHighScore(context.Background(), "shutdown")
	require.NoError(t, err)
	require.Equal(t, int64(30), score)
}

func TestRecorderRecordNeverBlocks(t *testing.T) {
	r := NewRecorder(highscore.InMemStore(), "noblock", nil)
	done := make(chan struct{})
	go func() {
		for i := int64(0); i < 1000; i++ {
			r.Record(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked without a running recorder")
	}

	score, ok := r.take()
	require.True(t, ok)
	require.Equal(t, int64(999), score)
	_, ok = r.take()
	require.False(t, ok)
}

func TestRecorderWriteErrorIsRetried(t *testing.T) {
	store := &countingStore{Store: highscore.InMemStore(), failing: true}
	r := NewRecorder(store, "retry", nil)

	r.Record(50)
	r.flush(context.Background())
	require.Equal(t, []int64{50}, store.writes())

	_, err := store.Store.GetHighScore(context.Background(), "retry")
	require.Equal(t, highscore.ErrNotFound, err)

	store.setFailing(false)
	r.flush(context.Background())
	require.Equal(t, []int64{50, 50}, store.writes())

	score, err := store.Store.GetHighScore(context.Background(), "retry")
	require.NoError(t, err)
	require.Equal(t, int64(50), score)
}

func TestRecorderRequeueKeepsNewerScore(t *testing.T) {
	r := NewRecorder(highscore.InMemStore(), "requeue", nil)
	r.Record(10)
	score, ok := r.take()
	require.True(t, ok)
	require.Equal(t, int64(10), score)

	r.Record(20)
	r.requeue(score)

	score, ok = r.take()
	require.True(t, ok)
	require.Equal(t, int64(20), score)
}
