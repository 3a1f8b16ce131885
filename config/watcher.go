package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/autotap/logging"
)

// Watcher watches the configuration file for changes and reloads it,
// letting click timing and button be retuned while the program runs.
type Watcher struct {
	path      string
	loader    *Loader
	onChange  func(*Config)
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	stopOnce  sync.Once
	debouncer *debouncer
}

// NewWatcher creates a new configuration file watcher
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	expandedPath := os.ExpandEnv(path)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	loader := NewLoader()
	loader.AddSource(NewFileSource(expandedPath))
	loader.AddValidator(NewStandardValidator())

	return &Watcher{
		path:      expandedPath,
		loader:    loader,
		onChange:  onChange,
		watcher:   fsWatcher,
		stopCh:    make(chan struct{}),
		debouncer: newDebouncer(500 * time.Millisecond),
	}, nil
}

// Start starts watching the configuration file
func (w *Watcher) Start() error {
	if _, err := w.loader.LoadWithDefaults(); err != nil {
		return fmt.Errorf("failed to load initial configuration: %w", err)
	}

	if err := w.addWatches(); err != nil {
		return fmt.Errorf("failed to add file watches: %w", err)
	}

	go w.processEvents()

	return nil
}

// Stop stops watching the configuration file
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.debouncer.stop()
	})
	return w.watcher.Close()
}

// addWatches watches the config file and its directory. The directory
// watch catches editors that replace the file instead of writing it.
func (w *Watcher) addWatches() error {
	if _, err := os.Stat(w.path); err == nil {
		if err := w.watcher.Add(w.path); err != nil {
			return fmt.Errorf("failed to watch config file %s: %w", w.path, err)
		}
	}

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	return nil
}

// processEvents processes file system events until stopped
func (w *Watcher) processEvents() {
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
			logging.LogWarnf("config watcher error: %v", err)

		case <-w.stopCh:
			return
		}
	}
}

// handleEvent reloads the configuration after relevant file events
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.debouncer.trigger(func() {
		cfg, err := w.loader.LoadWithDefaults()
		if err != nil {
			logging.LogWarnf("config reload failed, keeping previous configuration: %v", err)
			return
		}

		logging.LogInfof("configuration reloaded from %s", w.path)
		if w.onChange != nil {
			w.onChange(cfg)
		}
	})
}

// debouncer collapses bursts of file events into one reload
type debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
