package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning indicates another lexweave invocation holds the run lock.
var ErrAlreadyRunning = errors.New("another lexweave run is already in progress")

// runLock serializes pipeline invocations across processes. Concurrent runs
// would race on the pending area and the manifest, so a second invocation
// fails fast instead of queueing.
type runLock struct {
	path string
	lock *flock.Flock
}

func newRunLock(logDir string) *runLock {
	path := filepath.Join(logDir, "lexweave.lock")
	return &runLock{path: path, lock: flock.New(path)}
}

func (l *runLock) acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	return nil
}

func (l *runLock) release() error {
	return l.lock.Unlock()
}
