// Package watch reports changes to a fixed set of files, coalescing bursts of
// filesystem events into a single callback.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long the watcher waits for a burst of events to settle.
const DefaultDelay = 150 * time.Millisecond

// Watcher calls onChange after any of its target files is written, created,
// renamed or removed. Directories are watched rather than files so atomic
// rename-into-place writes are seen.
type Watcher struct {
	watcher   *fsnotify.Watcher
	targets   map[string]struct{}
	debouncer *Debouncer
	log       *slog.Logger
	wg        sync.WaitGroup
}

// New creates a watcher for targets. Nothing is observed until Start.
func New(targets []string, delay time.Duration, onChange func()) (*Watcher, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("watch: no target files")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:   fw,
		targets:   make(map[string]struct{}, len(targets)),
		debouncer: NewDebouncer(delay, onChange),
		log:       slog.Default(),
	}
	for _, t := range targets {
		w.targets[filepath.Clean(t)] = struct{}{}
	}
	return w, nil
}

// Start watches the parent directories of the targets until ctx is done or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]struct{})
	for t := range w.targets {
		dirs[filepath.Dir(t)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.eventLoop(ctx)
	return nil
}

// Stop closes the watcher and waits for the event loop and any running
// callback to exit.
func (w *Watcher) Stop() {
	_ = w.watcher.Close()
	w.debouncer.Stop()
	w.wg.Wait()
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if _, ok := w.targets[filepath.Clean(event.Name)]; !ok {
		return
	}
	if event.Op == fsnotify.Chmod {
		return
	}
	w.log.Debug("slot changed", "path", event.Name, "op", event.Op.String())
	w.debouncer.Trigger()
}

// Debouncer runs a callback once events stop arriving for the configured delay.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	onFlush func()
	stopped bool
	running sync.WaitGroup
}

// NewDebouncer creates a debouncer. A non-positive delay means DefaultDelay.
func NewDebouncer(delay time.Duration, onFlush func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, onFlush: onFlush}
}

// Trigger (re)starts the countdown.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.running.Add(1)
	d.mu.Unlock()
	defer d.running.Done()

	if d.onFlush != nil {
		d.onFlush()
	}
}

// Stop cancels any pending callback and waits for one already running.
// Later triggers are ignored. It must not be called from the callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.running.Wait()
}
