package config

import (
	"context"
	"path/filepath"
	"time"

	"tempconv/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce batches the burst of events editors emit on save.
const DefaultWatchDebounce = 250 * time.Millisecond

// ReloadFunc receives the freshly loaded config, or the error that
// prevented loading it.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads the config file when it, or the labels file it points
// to, changes on disk. Directories are watched rather than files so that
// editors which save by rename are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	files    map[string]bool
	debounce time.Duration
	onReload ReloadFunc
}

// NewWatcher watches path and any extra files (e.g. the labels overlay).
func NewWatcher(path string, onReload ReloadFunc, extra ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     path,
		files:    make(map[string]bool),
		debounce: DefaultWatchDebounce,
		onReload: onReload,
	}

	log := logging.Get(logging.CategoryConfig)
	dirs := make(map[string]bool)
	for _, f := range append([]string{path}, extra...) {
		if f == "" {
			continue
		}
		f = filepath.Clean(f)
		w.files[f] = true
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			// Directory may not exist yet
			log.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		log.Debug("watching directory", zap.String("dir", dir))
	}

	return w, nil
}

// SetDebounce changes the quiet period before a reload.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks, delivering reloads until ctx is cancelled. It closes the
// underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	log := logging.Get(logging.CategoryConfig)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug("config event", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			pending = time.After(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			cfg, err := Load(w.path)
			if err != nil {
				log.Warn("reload failed", zap.Error(err))
			} else {
				log.Info("config reloaded", zap.String("path", w.path))
			}
			w.onReload(cfg, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.files[filepath.Clean(event.Name)] {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
