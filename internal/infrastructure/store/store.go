package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
)

// FeedCacheStore caches pages of the public post feed in Redis. The feed is
// the hottest read path and tolerates slightly stale data.
type FeedCacheStore struct {
	rdb     *redis.Client
	pageTTL time.Duration
}

func NewFeedCacheStore(rdb *redis.Client) *FeedCacheStore {
	return &FeedCacheStore{
		rdb:     rdb,
		pageTTL: 5 * time.Minute,
	}
}

var _ contract.IFeedCache = (*FeedCacheStore)(nil)

// FeedPageKey builds the cache key for one page of the feed.
func FeedPageKey(page, limit int, location, sort string) string {
	return fmt.Sprintf("posts:feed:p%d:l%d:loc=%s:sort=%s", page, limit, location, sort)
}

func (c *FeedCacheStore) GetFeedPage(ctx context.Context, key string) (*contract.CachedFeedPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedFeedPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *FeedCacheStore) SetFeedPage(ctx context.Context, key string, page *contract.CachedFeedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.pageTTL).Err()
}

// InvalidateFeed drops every cached feed page. Called after any post write.
func (c *FeedCacheStore) InvalidateFeed(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "posts:feed:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
