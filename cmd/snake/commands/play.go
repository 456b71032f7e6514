package commands

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/game"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const loadTimeout = 2 * time.Second

var (
	themeName  = "classic"
	promEnable = false
	promListen = ":9000"
	logFile    = ""
	logLevel   = "info"
)

func init() {
	playCmd.Flags().StringVarP(&themeName, "theme", "t", themeName, fmt.Sprintf("visual theme, as one of: [%s]", strings.Join(themeNames(), ", ")))
	playCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	playCmd.Flags().StringVar(&logFile, "log-file", logFile, "file to write logs to, logs are discarded when empty")
	playCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game of snake in the terminal",
	Run: func(c *cobra.Command, args []string) {
		exitOnError(play())
	},
}

// setupLogging points logrus at the log file. The terminal belongs to the
// game so nothing is logged to it.
func setupLogging(path, level string) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(lvl)

	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func play() error {
	t, ok := themes[themeName]
	if !ok {
		return errors.Errorf("unknown theme %q", themeName)
	}

	settings := config.GameSettings()
	if err := settings.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	prometheus(promEnable, promListen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := worker.NewRecorder(store, scoreKey, rate.NewLimiter(config.PersistRate, config.PersistBurst))
	loadCtx, loadCancel := context.WithTimeout(ctx, loadTimeout)
	highScore := recorder.Load(loadCtx)
	loadCancel()

	session := game.New(settings, rules.NewRandSource(time.Now().UnixNano()))
	session.SetHighScore(highScore)
	log.WithFields(log.Fields{
		"GameID":    session.ID(),
		"HighScore": highScore,
		"theme":     t.name,
	}).Info("starting snake")

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	commands := make(chan game.Command)
	pumpDone := make(chan struct{})
	go func() {
		defer close(pumpDone)
		pumpEvents(ctx, cancel, termbox.PollEvent, commands)
	}()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		recorder.Run(ctx)
	}()

	w := &worker.Worker{
		Session:  session,
		Commands: commands,
		Render:   newRenderer(t).render,
		Recorder: recorder,
	}
	err = w.Run(ctx)

	cancel()
	// Interrupt blocks until a PollEvent call takes it.
	select {
	case <-pumpDone:
	default:
		go termbox.Interrupt()
		<-pumpDone
	}
	wg.Wait()

	if err == context.Canceled {
		err = nil
	}
	return err
}
