package brain

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialLocksSameKeyBlocks(t *testing.T) {
	locks := newSerialLocks()
	ctx := context.Background()

	release, ok := locks.acquire(ctx, "t1/r1/u1", 10*time.Millisecond)
	require.True(t, ok)

	_, ok = locks.acquire(ctx, "t1/r1/u1", 20*time.Millisecond)
	assert.False(t, ok, "second acquire on the same key must time out")

	release()
	release2, ok := locks.acquire(ctx, "t1/r1/u1", 10*time.Millisecond)
	require.True(t, ok, "lock must be reusable after release")
	release2()
}

func TestSerialLocksDistinctKeysIndependent(t *testing.T) {
	locks := newSerialLocks()
	ctx := context.Background()

	r1, ok := locks.acquire(ctx, "t1/r1/u1", 10*time.Millisecond)
	require.True(t, ok)
	defer r1()

	r2, ok := locks.acquire(ctx, "t1/r1/u2", 10*time.Millisecond)
	require.True(t, ok, "a different user must not be serialized behind u1")
	r2()
}

func TestSerialLocksWaiterRunsAfterRelease(t *testing.T) {
	locks := newSerialLocks()
	ctx := context.Background()

	release, ok := locks.acquire(ctx, "k", time.Second)
	require.True(t, ok)

	var order []int
	var mu sync.Mutex
	done := make(chan struct{})
	go func() {
		defer close(done)
		r, ok := locks.acquire(ctx, "k", time.Second)
		if !ok {
			return
		}
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		r()
	}()

	mu.Lock()
	order = append(order, 1)
	mu.Unlock()
	release()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
	assert.Equal(t, []int{1, 2}, order)
}

func TestSerialLocksCancelledContext(t *testing.T) {
	locks := newSerialLocks()

	release, ok := locks.acquire(context.Background(), "k", time.Second)
	require.True(t, ok)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok = locks.acquire(ctx, "k", time.Minute)
	assert.False(t, ok, "cancelled context must not wait out the full timeout")
}
