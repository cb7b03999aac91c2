package index

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultSettle is how long the watcher waits after a change before
// reloading, so a burst of writes is read once.
const DefaultSettle = 100 * time.Millisecond

var ErrAlreadyWatching = errors.New("already watching")

// Watcher keeps an index in sync with the word lists it was loaded from.
// The parent directory of every file is watched so that editors replacing
// a file by rename are seen as well.
type Watcher struct {
	idx     *Index
	loader  *Loader
	watcher *fsnotify.Watcher
	logger  *zap.Logger

	mu       sync.Mutex
	files    map[string]bool
	watching bool

	// Settle is the delay between an event and the reload.
	Settle time.Duration
	// OnReload is called after each reload or removal with its outcome.
	OnReload func(path string, err error)
}

func NewWatcher(idx *Index, loader *Loader, logger *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		idx:     idx,
		loader:  loader,
		watcher: w,
		logger:  logger,
		files:   make(map[string]bool),
		Settle:  DefaultSettle,
	}, nil
}

// Add starts tracking files.
func (w *Watcher) Add(files ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make(map[string]bool)
	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = true
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Run handles events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.watching {
		w.mu.Unlock()
		return ErrAlreadyWatching
	}
	w.watching = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.watching = false
		w.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher. A running Run returns nil.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) tracked(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[filepath.Clean(name)]
}

func (w *Watcher) handleFileEvent(ctx context.Context, event fsnotify.Event) {
	if !w.tracked(event.Name) {
		return
	}
	path := filepath.Clean(event.Name)

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.Settle):
		}

		if !w.changed(path) {
			w.logger.Debug("File content unchanged", zap.String("file", path))
			return
		}

		f, err := w.loader.LoadFile(ctx, path)
		if err != nil {
			w.logger.Error("Error reloading file", zap.String("file", path), zap.Error(err))
			w.notify(path, err)
			return
		}
		w.idx.ReplaceFile(f)
		w.notify(path, nil)

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		gone := w.idx.RemoveFile(path)
		w.logger.Info("Dropped file",
			zap.String("file", path),
			zap.Int("removed", gone))
		w.notify(path, nil)
	}
}

func (w *Watcher) notify(path string, err error) {
	if w.OnReload != nil {
		w.OnReload(path, err)
	}
}

// changed reports whether the content of path differs from the content the
// index last loaded it from. Unreadable files count as changed.
func (w *Watcher) changed(path string) bool {
	digest, err := fileDigest(path)
	if err != nil {
		return true
	}
	loaded, ok := w.idx.Digest(path)
	return !ok || loaded != digest
}

func fileDigest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
