package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	FeedPageKeyPrefix = "feed:index:page:%d"
	feedPagePattern   = "feed:index:page:*"
)

// PageTTL bounds how stale a cached index feed page may get. Post writes do
// not invalidate cached pages; readers tolerate staleness up to this window.
const PageTTL = 20 * time.Second

// FeedPageKey builds the cache key for a page of the global index feed.
// Keys are derived from the requested page number, so an out-of-range request
// caches the clamped result under the number that was asked for.
func FeedPageKey(page int) string {
	return fmt.Sprintf(FeedPageKeyPrefix, page)
}

// ClearPages removes every cached index feed page immediately. Writers never
// invalidate pages themselves; staleness ends at TTL expiry or here.
func ClearPages(ctx context.Context) error {
	if client == nil {
		return nil
	}
	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, feedPagePattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
