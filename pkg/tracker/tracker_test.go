package tracker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRunsAndWaits(t *testing.T) {
	tr := New()
	var ran atomic.Bool
	tr.Go("one-shot", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})
	require.True(t, tr.Shutdown(time.Second))
	assert.True(t, ran.Load())
	assert.Empty(t, tr.Active())
}

func TestTrackerCancelsOnShutdown(t *testing.T) {
	tr := New()
	stopped := make(chan struct{})
	tr.Go("looper", func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	})
	require.True(t, tr.Shutdown(time.Second))
	select {
	case <-stopped:
	default:
		t.Fatal("task context was not cancelled")
	}
}

func TestTrackerSurvivesPanicAndError(t *testing.T) {
	tr := New()
	tr.Go("panics", func(ctx context.Context) error {
		panic("boom")
	})
	tr.Go("errors", func(ctx context.Context) error {
		return errors.New("task error")
	})
	assert.True(t, tr.Shutdown(time.Second))
}

func TestTrackerShutdownTimeout(t *testing.T) {
	tr := New()
	release := make(chan struct{})
	tr.Go("stuck", func(ctx context.Context) error {
		<-release
		return nil
	})
	assert.False(t, tr.Shutdown(50*time.Millisecond))
	close(release)
}
