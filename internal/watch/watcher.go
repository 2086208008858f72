// Package watch re-runs a job whenever a single file changes on disk.
// It backs `wireletter render --watch`, re-rendering the letter each time the
// request file is saved.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/wireletter/pkg/log"
)

// DefaultDebounce is the quiet period after the last event before the job runs.
const DefaultDebounce = 100 * time.Millisecond

// Func is the job run on start and after every debounced change.
type Func func(ctx context.Context) error

// Watcher monitors one file through its parent directory.
type Watcher struct {
	path     string
	fn       Func
	debounce time.Duration
	logger   log.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Watcher for path.
func New(path string, fn Func, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		fn:       fn,
		debounce: DefaultDebounce,
		logger:   log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run runs the job once, then again after each burst of writes to the file.
// Job errors are logged and do not stop the watcher. Run blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching for changes", log.String("path", w.path))

	w.run(ctx)

	timer := time.NewTimer(w.debounce)
	stopTimer(timer)
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			stopTimer(timer)
			timer.Reset(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.run(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	start := time.Now()
	if err := w.fn(ctx); err != nil {
		w.logger.Warn("job failed", log.String("path", w.path), log.Err(err))
		return
	}
	w.logger.Debug("job finished", log.String("path", w.path), log.Duration("took", time.Since(start)))
}

// stopTimer stops t and drains a pending tick so Reset starts clean.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
