// Package tracker supervises background goroutines so shutdown can wait for
// them and panics never escape silently.
package tracker

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Tracker runs named background tasks and waits for them on shutdown.
type Tracker struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	active   map[string]int
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a tracker.
func New() *Tracker {
	return &Tracker{
		active: make(map[string]int),
		stopCh: make(chan struct{}),
	}
}

// Go runs fn on a supervised goroutine. The task receives a context that is
// cancelled when the tracker shuts down. Errors and panics are logged with
// the task name; tasks are fire-and-forget from the caller's view.
func (t *Tracker) Go(name string, fn func(ctx context.Context) error) {
	t.mu.Lock()
	t.active[name]++
	t.mu.Unlock()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			t.mu.Lock()
			t.active[name]--
			if t.active[name] == 0 {
				delete(t.active, name)
			}
			t.mu.Unlock()
		}()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Background task panicked",
					"task", name,
					"panic", r,
					"stack", string(debug.Stack()))
			}
		}()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case <-t.stopCh:
				cancel()
			case <-ctx.Done():
			}
		}()

		if err := fn(ctx); err != nil {
			slog.Error("Background task failed", "task", name, "error", err)
		}
	}()
}

// Active returns the names of currently running tasks (for logging).
func (t *Tracker) Active() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(t.active))
	for name := range t.active {
		names = append(names, name)
	}
	return names
}

// Shutdown cancels all task contexts and waits up to timeout for tasks to
// finish. Returns true when everything exited in time.
func (t *Tracker) Shutdown(timeout time.Duration) bool {
	if names := t.Active(); len(names) > 0 {
		slog.Info("Waiting for background tasks to complete", "tasks", names)
	}
	t.stopOnce.Do(func() { close(t.stopCh) })

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		slog.Warn("Background tasks did not finish before timeout", "tasks", t.Active())
		return false
	}
}
