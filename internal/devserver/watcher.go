package devserver

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchExtensions are the file types whose changes trigger a reload.
var watchExtensions = map[string]bool{
	".go":   true,
	".html": true,
	".css":  true,
	".js":   true,
	".wasm": true,
	".yaml": true,
	".yml":  true,
}

// Watcher debounces filesystem events under a directory tree and invokes
// a callback with the batch of changed paths.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func(paths []string)
}

// NewWatcher watches dir recursively. onChange runs on the watcher's
// goroutine once per quiet period.
func NewWatcher(dir string, debounce time.Duration, onChange func(paths []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fsw: fsw, debounce: debounce, onChange: onChange}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != dir || name == "node_modules" {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run blocks dispatching events until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}

	var pending []string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			pending = append(pending, event.Name)
			debounce.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return err

		case <-debounce.C:
			if len(pending) > 0 {
				paths := pending
				pending = nil
				w.onChange(paths)
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return watchExtensions[strings.ToLower(filepath.Ext(event.Name))]
}
