package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/spf13/cobra"
)

const storeTimeout = 5 * time.Second

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "shows the stored high score",
	Run: func(c *cobra.Command, args []string) {
		exitOnError(withStore(func(ctx context.Context, store highscore.Store) error {
			return showHighScore(ctx, os.Stdout, store, scoreKey)
		}))
	},
}

var highScoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "clears the stored high score",
	Run: func(c *cobra.Command, args []string) {
		exitOnError(withStore(func(ctx context.Context, store highscore.Store) error {
			return resetHighScore(ctx, os.Stdout, store, scoreKey)
		}))
	},
}

func init() {
	highScoreCmd.AddCommand(highScoreResetCmd)
}

func withStore(f func(context.Context, highscore.Store) error) error {
	store, closeStore, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	return f(ctx, store)
}

func showHighScore(ctx context.Context, w io.Writer, store highscore.Store, key string) error {
	score, err := store.GetHighScore(ctx, key)
	if err == highscore.ErrNotFound {
		score, err = 0, nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "high score: %d\n", score)
	return nil
}

func resetHighScore(ctx context.Context, w io.Writer, store highscore.Store, key string) error {
	if err := store.DeleteHighScore(ctx, key); err != nil {
		return err
	}
	fmt.Fprintln(w, "high score reset")
	return nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
