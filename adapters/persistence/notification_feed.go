package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/snapstream/snapstream-api/internal/domain/notification"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

const feedKey = "notifications:recent"

type redisNotificationFeed struct {
	rdb    *redis.Client
	cap    int64
	logger logger.Logger
}

// NewRedisNotificationFeed keeps the newest `capacity` notifications in a
// redis list, newest first.
func NewRedisNotificationFeed(rdb *redis.Client, capacity int, logger logger.Logger) notification.Feed {
	if capacity <= 0 {
		capacity = 100
	}
	return &redisNotificationFeed{rdb: rdb, cap: int64(capacity), logger: logger}
}

func (f *redisNotificationFeed) Push(ctx context.Context, n notification.Notification) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification failed: %w", err)
	}

	pipe := f.rdb.TxPipeline()
	pipe.LPush(ctx, feedKey, raw)
	pipe.LTrim(ctx, feedKey, 0, f.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification to feed failed: %w", err)
	}
	return nil
}

func (f *redisNotificationFeed) Recent(ctx context.Context, limit int) ([]notification.Notification, error) {
	if limit <= 0 || int64(limit) > f.cap {
		limit = int(f.cap)
	}
	raws, err := f.rdb.LRange(ctx, feedKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read notification feed failed: %w", err)
	}

	items := make([]notification.Notification, 0, len(raws))
	for _, raw := range raws {
		var n notification.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			f.logger.Warn("Skipping malformed notification feed entry")
			continue
		}
		items = append(items, n)
	}
	return items, nil
}
