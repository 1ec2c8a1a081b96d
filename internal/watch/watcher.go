// Package watch re-runs work when a snapshot directory changes on
// disk. It wraps fsnotify with a rate limiter so scraper runs that
// rewrite several JSON files in quick succession trigger one refresh,
// not five.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/sehat-labs/gapscan/internal/logger"
)

// DefaultRefreshRate allows at most one refresh every two seconds.
const DefaultRefreshRate = rate.Limit(0.5)

// Watcher observes a snapshot directory and invokes a callback when
// its JSON files change, throttled by a token bucket.
type Watcher struct {
	dir      string
	fw       *fsnotify.Watcher
	limiter  *rate.Limiter
	onChange func(ctx context.Context) error
}

// New creates a watcher over dir. onChange runs after each throttled
// change burst; its error is logged, never fatal, so one bad refresh
// does not stop the watch loop.
func New(dir string, onChange func(ctx context.Context) error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		fw:       fw,
		limiter:  rate.NewLimiter(DefaultRefreshRate, 1),
		onChange: onChange,
	}, nil
}

// SetRefreshRate overrides the throttle rate. Only valid before Run.
func (w *Watcher) SetRefreshRate(r rate.Limit) {
	w.limiter = rate.NewLimiter(r, 1)
}

// Run blocks processing events until the context is cancelled or the
// underlying watcher closes.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("snapshot change: %s %s", event.Op, event.Name)

			// Wait absorbs bursts: concurrent writes collapse into
			// one refresh per token.
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			drain(w.fw.Events)

			if err := w.onChange(ctx); err != nil {
				logger.Warn("refresh failed: %v", err)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// Close stops the watcher. Run returns after Close.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// relevant reports whether the event should trigger a refresh: JSON
// file creates, writes, removes and renames. Chmod and non-JSON noise
// (editor swap files, scraper temp output) are ignored.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Ext(event.Name) == ".json"
}

// drain discards queued events so a burst already paid for by one
// token does not schedule further refreshes.
func drain(events chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
