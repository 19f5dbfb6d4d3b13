package brain

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduperFirstDeliveryOncePerMessage(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	d := newDeduper(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	assert.True(t, d.firstDelivery(ctx, "t1", "m1"))
	assert.False(t, d.firstDelivery(ctx, "t1", "m1"), "redelivery must be detected")

	// Same message id under another tenant is independent.
	assert.True(t, d.firstDelivery(ctx, "t2", "m1"))
}

func TestDeduperFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	d := newDeduper(rdb)
	assert.True(t, d.firstDelivery(context.Background(), "t1", "m1"),
		"redis outage must not drop live messages")
}

func TestDeduperNilClient(t *testing.T) {
	d := newDeduper(nil)
	assert.True(t, d.firstDelivery(context.Background(), "t1", "m1"))
}
