package record

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change before reloading.
const DefaultDebounce = 150 * time.Millisecond

// ErrNothingToWatch is returned when every path is stdin.
var ErrNothingToWatch = errors.New("no record files to watch")

// ReloadFunc re-reads the watched record files.
type ReloadFunc func(ctx context.Context) ([]*Record, error)

// ReloadResult is the outcome of one reload.
type ReloadResult struct {
	Records []*Record
	Err     error
}

// Watcher reloads record files when they change on disk.
type Watcher struct {
	// Debounce groups bursts of events into one reload. Editors often write
	// a file several times per save.
	Debounce time.Duration

	watcher *fsnotify.Watcher
	files   map[string]struct{}
	reload  ReloadFunc
	results chan ReloadResult
}

// NewWatcher watches paths and calls reload after they change.
// Parent directories are watched so files replaced by rename are still seen.
func NewWatcher(paths []string, reload ReloadFunc) (*Watcher, error) {
	files := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == StdinPath {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	if len(files) == 0 {
		return nil, ErrNothingToWatch
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	for dir := range dirs {
		if err = fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return &Watcher{
		Debounce: DefaultDebounce,
		watcher:  fw,
		files:    files,
		reload:   reload,
		results:  make(chan ReloadResult),
	}, nil
}

// Results delivers one ReloadResult per debounced change. It is closed when Run returns.
func (w *Watcher) Results() <-chan ReloadResult {
	return w.results
}

// Run processes file events until ctx is cancelled. It closes the underlying
// watcher and the results channel before returning. Watcher errors are
// delivered as a ReloadResult and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.results)
	defer w.watcher.Close()

	w.loop(ctx, w.watcher.Events, w.watcher.Errors)
	return nil
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	timer := time.NewTimer(w.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.Debounce)

		case <-timer.C:
			records, err := w.reload(ctx)
			if !w.send(ctx, ReloadResult{Records: records, Err: err}) {
				return
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			if !w.send(ctx, ReloadResult{Err: fmt.Errorf("watching record files: %w", err)}) {
				return
			}
		}
	}
}

// send delivers res unless ctx is cancelled first.
func (w *Watcher) send(ctx context.Context, res ReloadResult) bool {
	select {
	case w.results <- res:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
