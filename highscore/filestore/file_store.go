// Package filestore keeps high scores on the local disk, one small protobuf
// encoded file per key.
package filestore

import (
	"context"
	"io/ioutil"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const scoreFileExt = ".score"

var writeFile = atomicWriteFile

func defaultDir() string {
	return filepath.Join(homeDir(), ".battlesnake", "scores")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation (1 file per key).
// An empty directory means ~/.battlesnake/scores.
func NewFileStore(directory string) highscore.Store {
	if directory == "" {
		directory = defaultDir()
	}
	return &fileStore{directory: directory}
}

type fileStore struct {
	lock      sync.Mutex
	directory string
}

func (fs *fileStore) path(key string) string {
	return filepath.Join(fs.directory, url.PathEscape(key)+scoreFileExt)
}

func (fs *fileStore) GetHighScore(ctx context.Context, key string) (int64, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	return fs.read(key)
}

func (fs *fileStore) PutHighScore(ctx context.Context, key string, score int64) (int64, error) {
	if score < 0 {
		return 0, highscore.ErrNegativeScore
	}

	fs.lock.Lock()
	defer fs.lock.Unlock()

	current, err := fs.read(key)
	if err == nil && current >= score {
		return current, nil
	}
	if err != nil && err != highscore.ErrNotFound {
		return 0, err
	}

	data, err := proto.Marshal(&types.Int64Value{Value: score})
	if err != nil {
		return 0, errors.Wrap(err, "unable to encode score")
	}
	if err := os.MkdirAll(fs.directory, 0775); err != nil {
		return 0, errors.Wrap(err, "unable to create score directory")
	}
	if err := writeFile(fs.path(key), data); err != nil {
		return 0, errors.Wrapf(err, "unable to write score for %s", key)
	}
	log.WithFields(log.Fields{
		"key":   key,
		"score": score,
	}).Debug("high score written")
	return score, nil
}

func (fs *fileStore) DeleteHighScore(ctx context.Context, key string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "unable to delete score for %s", key)
	}
	return nil
}

func (fs *fileStore) read(key string) (int64, error) {
	data, err := ioutil.ReadFile(fs.path(key))
	if os.IsNotExist(err) {
		return 0, highscore.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read score for %s", key)
	}
	v := &types.Int64Value{}
	if err := proto.Unmarshal(data, v); err != nil {
		return 0, errors.Wrapf(err, "corrupt score file for %s", key)
	}
	return v.Value, nil
}

// atomicWriteFile writes to a temporary file next to path and renames it into
// place, so a crash never leaves a half written score behind.
func atomicWriteFile(path string, data []byte) error {
	tmp, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
