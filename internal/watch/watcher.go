// Package watch re-renders a listing whenever the watched directory
// changes.
package watch

import (
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the debounce window for watcher events.
const Debounce = 400 * time.Millisecond

// Watcher coalesces filesystem events for one directory into a refresh
// signal channel.
type Watcher struct {
	Events chan struct{}

	watcher     *fsnotify.Watcher
	done        chan struct{}
	started     bool
	lastRefresh time.Time
	logf        func(string, ...any)
}

// New creates a Watcher. logf may be nil.
func New(logf func(string, ...any)) *Watcher {
	return &Watcher{logf: logf}
}

// Start begins watching dir and launches the background goroutine.
func (w *Watcher) Start(dir string) error {
	if w.started {
		return nil
	}
	if info, err := os.Stat(dir); err != nil {
		return err
	} else if !info.IsDir() {
		return os.ErrInvalid
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.Events = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.started = true
	go w.run()
	return nil
}

// Stop stops the watcher and closes channels.
func (w *Watcher) Stop() {
	if !w.started {
		return
	}
	close(w.done)
	w.started = false
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *Watcher) ShouldRefresh(now time.Time) bool {
	if !w.lastRefresh.IsZero() && now.Sub(w.lastRefresh) < Debounce {
		return false
	}
	w.lastRefresh = now
	return true
}

// Signal notifies listeners of watcher activity without blocking.
func (w *Watcher) Signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Chmod) == 0 {
				continue
			}
			w.Signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.debugf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
