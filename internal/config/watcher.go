package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// ReloadHandler receives freshly loaded options after the watched file
// changes.
type ReloadHandler func(Options)

// Watcher polls a config file and reloads it on modification. Polling
// avoids a platform file-notification dependency for a file that
// changes at human timescales.
type Watcher struct {
	path     string
	interval time.Duration
	handler  ReloadHandler

	mu      sync.Mutex
	modTime time.Time
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// NewWatcher creates a watcher for the config file at path. The
// handler runs on the watcher's goroutine.
func NewWatcher(path string, handler ReloadHandler, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		interval: 500 * time.Millisecond,
		handler:  handler,
	}
	for _, opt := range opts {
		opt(w)
	}
	if info, err := os.Stat(path); err == nil {
		w.modTime = info.ModTime()
	}
	return w
}

// Start begins polling. It returns immediately; polling stops when ctx
// is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return // already running
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll()
			}
		}
	}()
}

// Stop halts polling and waits for the watch goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) poll() {
	info, err := os.Stat(w.path)
	if err != nil {
		// Missing file: keep the last options, wait for recreation.
		return
	}

	w.mu.Lock()
	changed := info.ModTime().After(w.modTime)
	if changed {
		w.modTime = info.ModTime()
	}
	w.mu.Unlock()
	if !changed {
		return
	}

	opts, err := Load(w.path)
	if err != nil {
		// A half-written or invalid file degrades to no reload.
		return
	}
	if w.handler != nil {
		w.handler(opts)
	}
}
