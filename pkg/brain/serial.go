package brain

import (
	"context"
	"sync"
	"time"
)

// serialLocks enforces strictly serial processing per (tenant, room, user):
// two messages from the same user in the same room run in arrival order,
// cross-user concurrency is unrestricted.
type serialLocks struct {
	mu    sync.Mutex
	locks map[string]*serialEntry
}

type serialEntry struct {
	sem  chan struct{}
	refs int
}

func newSerialLocks() *serialLocks {
	return &serialLocks{locks: make(map[string]*serialEntry)}
}

// acquire blocks until the key's lock is free, the wait elapses, or ctx is
// cancelled. On success it returns a release function and true.
func (s *serialLocks) acquire(ctx context.Context, key string, wait time.Duration) (func(), bool) {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		e = &serialEntry{sem: make(chan struct{}, 1)}
		s.locks[key] = e
	}
	e.refs++
	s.mu.Unlock()

	release := func() {
		<-e.sem
		s.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
	giveUp := func() {
		s.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case e.sem <- struct{}{}:
		return release, true
	case <-timer.C:
		giveUp()
		return nil, false
	case <-ctx.Done():
		giveUp()
		return nil, false
	}
}
