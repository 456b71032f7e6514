package highscore

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "errors_total",
			Help:      "Store calls that returned an error other than not found.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func countError(method string, err error) {
	if err != nil && err != ErrNotFound {
		storeErrors.WithLabelValues(method).Inc()
	}
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) GetHighScore(ctx context.Context, key string) (int64, error) {
	defer instrument("GetHighScore")()
	score, err := m.s.GetHighScore(ctx, key)
	countError("GetHighScore", err)
	return score, err
}

func (m *metrics) PutHighScore(ctx context.Context, key string, score int64) (int64, error) {
	defer instrument("PutHighScore")()
	stored, err := m.s.PutHighScore(ctx, key, score)
	countError("PutHighScore", err)
	return stored, err
}

func (m *metrics) DeleteHighScore(ctx context.Context, key string) error {
	defer instrument("DeleteHighScore")()
	err := m.s.DeleteHighScore(ctx, key)
	countError("DeleteHighScore", err)
	return err
}
