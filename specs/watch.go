package specs

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher emits the spec path whenever the file is rewritten on disk.
// Editors fire bursts of filesystem events per save, so changes are
// debounced before they surface on Events.
type Watcher struct {
	fs     *fsnotify.Watcher
	path   string
	Events chan string
	Errors chan error

	stop     chan struct{}
	stopOnce sync.Once
}

// WatchFile watches a single spec file for changes. The parent
// directory is registered with fsnotify because most editors replace
// the file on save instead of writing it in place.
func WatchFile(path string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, err
	}

	w := &Watcher{
		fs:     fs,
		path:   filepath.Clean(path),
		Events: make(chan string, 4),
		Errors: make(chan error, 1),
		stop:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. Events and Errors close once the worker
// goroutine drains.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Events)
	defer close(w.Errors)

	var lastEmit time.Time
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if time.Since(lastEmit) < reloadDebounce {
				continue
			}
			lastEmit = time.Now()
			select {
			case w.Events <- ev.Name:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}
