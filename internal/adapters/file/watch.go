package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow absorbs the editor save dance: most editors emit several
// events (truncate, write, rename) for one logical save.
const debounceWindow = 100 * time.Millisecond

// Watch emits the graph file path every time the file changes on disk. The
// parent directory is watched rather than the file itself, so atomic
// save-via-rename still produces events. The channel closes when ctx is
// cancelled or the watcher fails.
func Watch(ctx context.Context, path string) (<-chan string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				pending = true
				timer.Reset(debounceWindow)

			case <-timer.C:
				if !pending {
					continue
				}
				pending = false
				select {
				case ch <- abs:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return ch, nil
}
