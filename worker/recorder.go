package worker

import (
	"context"
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 2 * time.Second

// Recorder persists high scores in the background so a slow or broken store
// never stalls the game loop. Only the latest score is kept between writes
// and writes are paced by Limiter.
type Recorder struct {
	Store   highscore.Store
	Key     string
	Limiter *rate.Limiter

	mu      sync.Mutex
	pending int64
	dirty   bool
	notify  chan struct{}
	once    sync.Once
}

// NewRecorder returns a recorder writing to key in store.
func NewRecorder(store highscore.Store, key string, limiter *rate.Limiter) *Recorder {
	if key == "" {
		key = highscore.DefaultKey
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Recorder{
		Store:   store,
		Key:     key,
		Limiter: limiter,
	}
}

func (r *Recorder) init() {
	r.once.Do(func() {
		r.notify = make(chan struct{}, 1)
	})
}

// Load reads the stored high score. A missing or unreadable score is 0; read
// errors are logged and otherwise ignored.
func (r *Recorder) Load(ctx context.Context) int64 {
	score, err := r.Store.GetHighScore(ctx, r.Key)
	if err == highscore.ErrNotFound {
		return 0
	}
	if err != nil {
		log.WithError(err).
			WithField("key", r.Key).
			Warn("unable to load high score, starting from 0")
		return 0
	}
	return score
}

// Record queues score to be written. It never blocks.
func (r *Recorder) Record(score int64) {
	r.init()
	r.mu.Lock()
	if !r.dirty || score > r.pending {
		r.pending = score
		r.dirty = true
	}
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

// Run writes queued scores until ctx is done, then flushes whatever is still
// queued before returning.
func (r *Recorder) Run(ctx context.Context) {
	r.init()
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			r.flush(flushCtx)
			cancel()
			return
		case <-r.notify:
		}

		if err := r.Limiter.Wait(ctx); err != nil {
			continue
		}
		r.flush(ctx)
	}
}

func (r *Recorder) take() (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return 0, false
	}
	r.dirty = false
	return r.pending, true
}

// requeue puts a failed score back unless a newer one arrived meanwhile.
func (r *Recorder) requeue(score int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		r.pending = score
		r.dirty = true
	}
}

func (r *Recorder) flush(ctx context.Context) {
	score, ok := r.take()
	if !ok {
		return
	}
	stored, err := r.Store.PutHighScore(ctx, r.Key, score)
	if err != nil {
		scoreWrites.WithLabelValues("error").Inc()
		log.WithError(err).
			WithFields(log.Fields{"key": r.Key, "score": score}).
			Warn("unable to save high score")
		r.requeue(score)
		return
	}
	scoreWrites.WithLabelValues("ok").Inc()
	log.WithFields(log.Fields{
		"key":    r.Key,
		"score":  score,
		"stored": stored,
	}).Debug("high score saved")
}
