package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a config file whenever it changes on disk and hands the
// result to a callback. Invalid files are logged and skipped.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	log      *zap.Logger
	onChange func(*Config)
	debounce time.Duration
	pending  time.Time
	running  bool
	doneCh   chan struct{}
}

// NewWatcher prepares a watcher for path. Nothing is watched until Start.
func NewWatcher(path string, log *zap.Logger, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		path:     filepath.Clean(path),
		log:      log,
		onChange: onChange,
		debounce: 200 * time.Millisecond,
		doneCh:   make(chan struct{}),
	}, nil
}

// Start watches the file's directory, since editors often save by
// replacing the file. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Debug("watching config", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and releases the file handles. It is safe to call
// without Start and more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	err := w.watcher.Close()
	if running {
		<-w.doneCh
	}
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))

		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.pending = time.Now()
}

// flush reloads once writes have been quiet for the debounce period.
func (w *Watcher) flush(now time.Time) {
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		return
	}
	w.pending = time.Time{}

	// A file moved or deleted away keeps the running config.
	if _, err := os.Stat(w.path); errors.Is(err, os.ErrNotExist) {
		w.log.Debug("config file gone, keeping current config", zap.String("path", w.path))
		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload skipped", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Info("config reloaded", zap.String("path", w.path))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
