// Package watcher reports changes to a single file, such as a preset that
// is being edited while the diagram is open.
package watcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor emits on save
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches one file and invokes a callback after it settles
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	timer    *time.Timer
	closed   bool
	inFlight sync.WaitGroup
	done     chan struct{}
}

// New creates a watcher for path. The parent directory is watched so that
// editors which replace the file on save are still observed.
func New(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &Watcher{
		watcher:  fsw,
		path:     absPath,
		debounce: debounce,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Start delivers changes to onChange until ctx is cancelled or Close is called.
// onChange runs on a timer goroutine and must not call Close.
func (w *Watcher) Start(ctx context.Context, onChange func(path string)) {
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				w.stopTimer()
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if w.relevant(event) {
					w.schedule(onChange)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("watcher error", "path", w.path, "err", err)
			}
		}
	}()
}

// relevant keeps write, create and rename events for the watched file only
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// schedule restarts the debounce timer
func (w *Watcher) schedule(onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(onChange) })
}

// fire runs onChange unless the watcher was stopped after the timer expired
func (w *Watcher) fire(onChange func(string)) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.inFlight.Add(1)
	w.mu.Unlock()
	defer w.inFlight.Done()

	w.logger.Debug("file changed", "path", w.path)
	onChange(w.path)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Close stops the watcher. Once it returns no further onChange call starts,
// and one that was already running has finished.
func (w *Watcher) Close() error {
	w.stopTimer()
	w.inFlight.Wait()
	return w.watcher.Close()
}
