package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/bucketlist/internal/logger"
)

// DefaultReloadDebounce groups the burst of events editors emit on save.
const DefaultReloadDebounce = 200 * time.Millisecond

// Watcher reloads a ConfigStore whenever its file changes on disk.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(error)
}

// NewWatcher creates a watcher for the store's file. onReload is called
// after every reload with the result of ConfigStore.Load.
func NewWatcher(store *ConfigStore, debounce time.Duration, onReload func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors often replace the file via rename,
	// which drops a watch placed on the file itself.
	if err := fw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}
	if onReload == nil {
		onReload = func(error) {}
	}

	return &Watcher{
		store:    store,
		watcher:  fw,
		debounce: debounce,
		onReload: onReload,
	}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	target := filepath.Clean(w.store.Path())

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)

		case <-fire:
			fire = nil
			err := w.store.Load()
			if err != nil {
				logger.Warn("config reload failed", "path", target, "error", err)
			} else {
				logger.Debug("config reloaded", "path", target)
			}
			w.onReload(err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
