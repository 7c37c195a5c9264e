package seencache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SeenCache is the hot "recently served" window. Markers expire on
// their own; the durable trail lives in Postgres (feed_seen rows).
type SeenCache struct {
	rdb    *redis.Client
	window time.Duration
}

func NewSeenCache(rdb *redis.Client, window time.Duration) *SeenCache {
	return &SeenCache{
		rdb:    rdb,
		window: window,
	}
}

// Window is the configured seen-window duration, exposed so durable
// fallbacks can apply the same bound.
func (c *SeenCache) Window() time.Duration {
	return c.window
}

func seenKey(userId, itemId uuid.UUID) string {
	return fmt.Sprintf("feed:seen:%s:%s", userId, itemId)
}

func (c *SeenCache) MarkSeen(ctx context.Context, userId uuid.UUID, itemIds []uuid.UUID) error {
	if len(itemIds) == 0 {
		return nil
	}
	pipe := c.rdb.Pipeline()
	for _, itemId := range itemIds {
		pipe.Set(ctx, seenKey(userId, itemId), 1, c.window)
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}

// RecentlySeen returns which of the given items are still inside the
// seen window for this user.
func (c *SeenCache) RecentlySeen(ctx context.Context, userId uuid.UUID, itemIds []uuid.UUID) (map[uuid.UUID]bool, error) {
	seen := make(map[uuid.UUID]bool, len(itemIds))
	if len(itemIds) == 0 {
		return seen, nil
	}

	pipe := c.rdb.Pipeline()
	cmds := make([]*redis.IntCmd, len(itemIds))
	for i, itemId := range itemIds {
		cmds[i] = pipe.Exists(ctx, seenKey(userId, itemId))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("check seen window: %w", err)
	}

	for i, cmd := range cmds {
		if cmd.Val() > 0 {
			seen[itemIds[i]] = true
		}
	}
	return seen, nil
}
