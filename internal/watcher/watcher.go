// Package watcher reports changes to the task store made outside this
// process, such as a second dayboard session on the same data.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher calls callback once per burst of writes to the watched paths.
type Watcher struct {
	fsw      *fsnotify.Watcher
	callback func()
	// names limits events to these base names; empty means any file.
	names map[string]bool
}

// New watches each path. A directory is watched as a whole; a file is
// watched through its parent directory so atomic renames are seen.
func New(paths []string, callback func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{fsw: fsw, callback: callback, names: make(map[string]bool)}
	for _, p := range paths {
		dir, name, err := splitWatchPath(p)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		if name != "" {
			w.names[name] = true
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run blocks until ctx is done or the underlying watcher is closed.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if ctx.Err() == nil {
					w.callback()
				}
			})
			mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	if len(w.names) == 0 {
		return true
	}
	base := filepath.Base(ev.Name)
	if w.names[base] {
		return true
	}
	// sqlite journals commit through sidecar files
	for name := range w.names {
		if base == name+"-wal" || base == name+"-journal" {
			return true
		}
	}
	return false
}
