package commands

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"testing"

	"github.com/battlesnakeio/arcade/highscore"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	store, closeStore, err := openStore("inmem", "")
	require.NoError(t, err)
	defer closeStore()

	stored, err := store.PutHighScore(context.Background(), "k", 5)
	require.NoError(t, err)
	require.Equal(t, int64(5), stored)
}

func TestOpenStoreFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "snake-cmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	store, closeStore, err := openStore("file", dir)
	require.NoError(t, err)
	defer closeStore()

	_, err = store.PutHighScore(context.Background(), "k", 15)
	require.NoError(t, err)

	reopened, closeReopened, err := openStore("file", dir)
	require.NoError(t, err)
	defer closeReopened()
	score, err := reopened.GetHighScore(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, int64(15), score)
}

func TestOpenStoreInvalid(t *testing.T) {
	store, closeStore, err := openStore("floppy", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "floppy")
	require.Nil(t, store)
	require.NotNil(t, closeStore)
}

func TestOpenStoreBadRedisURL(t *testing.T) {
	_, _, err := openStore("redis", "not a url")
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis backend")
}

func TestShowAndResetHighScore(t *testing.T) {
	ctx := context.Background()
	store := highscore.InMemStore()
	out := &bytes.Buffer{}

	require.NoError(t, showHighScore(ctx, out, store, "k"))
	require.Equal(t, "high score: 0\n", out.String())

	_, err := store.PutHighScore(ctx, "k", 120)
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, showHighScore(ctx, out, store, "k"))
	require.Equal(t, "high score: 120\n", out.String())

	out.Reset()
	require.NoError(t, resetHighScore(ctx, out, store, "k"))
	require.Equal(t, "high score reset\n", out.String())

	_, err = store.GetHighScore(ctx, "k")
	require.Equal(t, highscore.ErrNotFound, err)
}

func TestSetupLogging(t *testing.T) {
	_, err := setupLogging("", "loud")
	require.Error(t, err)

	f, err := ioutil.TempFile("", "snake-log")
	require.NoError(t, err)
	f.Close()
	defer os.Remove(f.Name())

	closeLog, err := setupLogging(f.Name(), "info")
	require.NoError(t, err)
	log.Info("log file test")
	closeLog()

	data, err := ioutil.ReadFile(f.Name())
	require.NoError(t, err)
	require.Contains(t, string(data), "log file test")
}
