package seed

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher re-imports the seed file when it changes on disk.
type Watcher struct {
	path     string
	writer   Writer
	debounce time.Duration
	onImport func(Result, error) // optional, called after every reimport
	mu       sync.Mutex
}

// NewWatcher makes a watcher for path importing into w.
func NewWatcher(path string, w Writer) *Watcher {
	return &Watcher{path: path, writer: w, debounce: defaultDebounce}
}

// OnImport sets a callback invoked after each reimport, used by callers to drop caches.
func (w *Watcher) OnImport(fn func(Result, error)) *Watcher {
	w.onImport = fn
	return w
}

// Start watches the directory of the seed file, not the file itself, so atomic renames
// made by editors are caught. The watcher stops when ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	if w.path == "" {
		return errors.New("seed file path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	filename := filepath.Base(w.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	log.Printf("[INFO] watching seed file %s for changes", w.path)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] seed watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(w.debounce, func() { w.reload(ctx) })

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] seed watcher error: %v", err)
			}
		}
	}()
	return nil
}

// reload imports the file, serialized so overlapping timers never import concurrently.
func (w *Watcher) reload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	res, err := ImportFile(ctx, w.writer, w.path)
	if err != nil {
		log.Printf("[WARN] failed to reimport seed file %s: %v", w.path, err)
	}
	if w.onImport != nil {
		w.onImport(res, err)
	}
}
