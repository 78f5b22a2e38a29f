package scene

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// LayoutWatcher reports writes to a layout file. It watches the parent
// directory so editors that save by rename are still seen.
type LayoutWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	once    sync.Once
}

// WatchLayout starts watching path until ctx is cancelled or Close is called.
func WatchLayout(ctx context.Context, path string) (*LayoutWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch layout dir: %w", err)
	}

	w := &LayoutWatcher{
		path:    abs,
		watcher: fw,
		// One pending notification is enough; the reader reloads the whole file.
		changes: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Changes delivers the layout path after each write. It is closed when the
// watcher stops.
func (w *LayoutWatcher) Changes() <-chan string {
	return w.changes
}

func (w *LayoutWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *LayoutWatcher) run(ctx context.Context) {
	defer close(w.changes)
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("layout watcher", "path", w.path, "err", err)
		}
	}
}
