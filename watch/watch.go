// Package watch re-runs a callback when files in a set of directories
// change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/shipq/namecase/logging"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before calling back.
const DefaultDebounce = 200 * time.Millisecond

// Options configures Run.
type Options struct {
	Dirs     []string
	Debounce time.Duration
	// Filter, if set, drops events for paths it returns false for.
	Filter func(path string) bool
	Logger *slog.Logger
}

// ChangeFunc is called with the sorted, de-duplicated paths that changed.
type ChangeFunc func(ctx context.Context, paths []string) error

// Run watches opts.Dirs until ctx is cancelled. Errors returned by onChange
// are logged and do not stop the watcher.
func Run(ctx context.Context, opts Options, onChange ChangeFunc) error {
	logger := logging.OrDiscard(opts.Logger)
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	for _, dir := range opts.Dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if opts.Filter != nil && !opts.Filter(event.Name) {
				continue
			}
			logger.Debug("watch_event", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = true
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch_error", "error", err)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)

			if err := onChange(ctx, paths); err != nil {
				logger.Error("watch_callback_failed", "error", err)
			}
		}
	}
}

func relevant(e fsnotify.Event) bool {
	return e.Has(fsnotify.Write) || e.Has(fsnotify.Create) ||
		e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename)
}
