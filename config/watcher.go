package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/bubble-popper/core"
)

// Watcher reloads a config file when it changes on disk
// Write bursts within the debounce window collapse into one reload
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	// Configs receives each successfully reloaded config
	Configs chan *Config
	// Errors receives load, validation and fsnotify errors
	Errors chan error

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path; the containing directory is watched so editor renames are seen
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		Configs:  make(chan *Config, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	core.Go(w.run)
	return w, nil
}

// Close stops the watcher; Configs and Errors are closed once the loop exits
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Configs)
		close(w.Errors)
		close(w.doneCh)
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			cfg, err := Load(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			// Keep only the newest pending config
			select {
			case <-w.Configs:
			default:
			}
			w.Configs <- cfg

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)

		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

// sendErr drops the error if the previous one was not consumed
func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
