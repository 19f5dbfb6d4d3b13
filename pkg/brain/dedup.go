package brain

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// deduper detects webhook redeliveries by (tenant, message_id) before any
// layer runs, so a duplicate produces zero side effects and no decision log.
type deduper struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func newDeduper(rdb *redis.Client) *deduper {
	return &deduper{rdb: rdb, logger: slog.Default().With("component", "dedup")}
}

// firstDelivery reports whether this (tenant, message_id) has not been seen
// within the TTL. Redis failures fail open: processing a duplicate twice is
// preferable to dropping a live message.
func (d *deduper) firstDelivery(ctx context.Context, tenantID, messageID string) bool {
	if d.rdb == nil {
		return true
	}
	key := "dedup:" + tenantID + ":" + messageID
	ok, err := d.rdb.SetNX(ctx, key, 1, dedupTTL).Result()
	if err != nil {
		d.logger.Warn("Dedup check failed, processing anyway",
			"tenant_id", tenantID, "message_id", messageID, "error", err)
		return true
	}
	return ok
}
