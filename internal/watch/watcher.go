// Package watch reports changes to a single file.
package watch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a burst of writes is reported.
const DefaultDebounce = 100 * time.Millisecond

// ErrStopped is returned by Start once the watcher has been stopped.
var ErrStopped = errors.New("watcher stopped")

// EventType represents the type of file event.
type EventType int

const (
	// Changed indicates the file was created or written.
	Changed EventType = iota
	// Removed indicates the file was deleted or renamed away.
	Removed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is a debounced change to the watched file.
type Event struct {
	Type EventType
	Path string
}

// Watcher monitors one file. Editors often replace files instead of writing
// in place, so the parent directory is watched and events are filtered by
// name.
type Watcher struct {
	path    string
	dir     string
	name    string
	watcher *fsnotify.Watcher
	events  chan Event
	logger  *slog.Logger

	debounceDelay time.Duration
	timer         *time.Timer
	pending       EventType
	timerMu       sync.Mutex

	stopCh    chan struct{}
	stoppedCh chan struct{}
	running   bool
	stopped   bool
	runningMu sync.Mutex
}

// New creates a watcher for path. It does not start watching until Start.
func New(path string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Watcher{
		path:          abs,
		dir:           filepath.Dir(abs),
		name:          filepath.Base(abs),
		events:        make(chan Event, 16),
		logger:        slog.Default(),
		debounceDelay: debounce,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. Calling Start on a running watcher is a no-op.
// A stopped watcher cannot be restarted; Start returns ErrStopped.
// The parent directory must exist; the file itself need not.
func (w *Watcher) Start() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()

	if w.running {
		return nil
	}
	if w.stopped {
		return ErrStopped
	}

	if _, err := os.Stat(w.dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	w.running = true
	go w.watchLoop()

	return nil
}

// Stop terminates the watcher and closes the events channel.
func (w *Watcher) Stop() {
	w.runningMu.Lock()
	if !w.running {
		w.runningMu.Unlock()
		return
	}
	w.running = false
	w.stopped = true
	w.runningMu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh

	w.watcher.Close()

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	close(w.events)
	w.timerMu.Unlock()
}

// Events returns the channel for receiving file events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) watchLoop() {
	defer close(w.stoppedCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) handleFsEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.name {
		return
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.debounce(Removed)
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		w.debounce(Changed)
	}
}

// debounce collapses a burst of events into one, reporting the last kind.
func (w *Watcher) debounce(kind EventType) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	w.pending = kind
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.fire)
}

func (w *Watcher) fire() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer == nil {
		// stopped
		return
	}
	w.timer = nil

	kind := w.pending
	// A rename-over (atomic save) shows up as Remove then Create; trust the
	// file system rather than the last event.
	if kind == Removed {
		if _, err := os.Stat(w.path); err == nil {
			kind = Changed
		}
	}

	select {
	case w.events <- Event{Type: kind, Path: w.path}:
	default:
		w.logger.Debug("dropping file event, channel full", "path", w.path)
	}
}
