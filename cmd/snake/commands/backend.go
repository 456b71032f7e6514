package commands

import (
	"io"
	"net/http"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/highscore/filestore"
	"github.com/battlesnakeio/arcade/highscore/redisstore"
	"github.com/battlesnakeio/arcade/highscore/sqlstore"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// openStore opens the high score backend named by name. The returned close
// func is never nil.
func openStore(name, args string) (highscore.Store, func(), error) {
	var (
		store highscore.Store
		err   error
	)
	switch name {
	case "inmem":
		store = highscore.InMemStore()
	case "file":
		store = filestore.NewFileStore(args)
	case "redis":
		store, err = redisstore.NewStore(args)
	case "sql":
		store, err = sqlstore.NewSQLStore(args)
	default:
		return nil, func() {}, errors.Errorf("invalid backend %q", name)
	}
	if err != nil {
		return nil, func() {}, errors.Wrapf(err, "unable to start up %s backend", name)
	}

	closeStore := func() {}
	if c, ok := store.(io.Closer); ok {
		closeStore = func() {
			if err := c.Close(); err != nil {
				log.WithError(err).
					WithField("backend", name).
					Error("unable to close store")
			}
		}
	}
	log.WithField("backend", name).Info("high score store ready")
	return highscore.InstrumentStore(store), closeStore, nil
}

func prometheus(enabled bool, listen string) {
	if !enabled {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", listen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(listen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
