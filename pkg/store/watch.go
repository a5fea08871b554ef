package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDelay = 100 * time.Millisecond

// Change is emitted by Watch after the watched file was written.
type Change struct {
	Path string
}

// Watch streams a Change for every burst of writes to path until ctx is
// cancelled. The directory is watched rather than the file so editors that
// replace the file on save are followed. The channel is closed once ctx is
// done or the watcher fails.
func Watch(ctx context.Context, path string) (<-chan Change, error) {
	if path == "" {
		return nil, errors.New("store: nothing to watch")
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	changes := make(chan Change, 8)

	go func() {
		throttle := newEventThrottle(watchDelay)
		defer close(changes)
		defer throttle.Stop()
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(c Change) {
			select {
			case changes <- c:
			default:
				// A pending change already covers this one.
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", path, err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != path {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Change{Path: path}, send)
			}
		}
	}()

	return changes, nil
}

// eventThrottle coalesces a burst of writes into one change.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Change
	stopped bool
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(c Change, send func(Change)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending = &c
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends under the lock so nothing is sent once Stop returns. send
// must not block.
func (t *eventThrottle) flush(send func(Change)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	if pending != nil && !t.stopped {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
