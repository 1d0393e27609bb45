package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/notes-craft/internal/logger"
)

const defaultSettle = 300 * time.Millisecond

// New watches path for writes, creates and renames. The parent directory is
// watched so editors that replace the file atomically are still seen.
// Events closer together than settle are collapsed into one handler call.
func New(path string, handler ChangeHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle <= 0 {
		settle = defaultSettle
	}

	return &implWatcher{
		path:    abs,
		handler: handler,
		logger:  log,
		watcher: fw,
		settle:  settle,
	}, nil
}
