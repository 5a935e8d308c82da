package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// CachedFeedPage is one serialized page of the public post feed.
type CachedFeedPage struct {
	Posts []*entity.Post `json:"posts"`
	Total int64          `json:"total"`
}

// IFeedCache abstracts the optional Redis cache in front of the post feed.
type IFeedCache interface {
	GetFeedPage(ctx context.Context, key string) (*CachedFeedPage, bool, error)
	SetFeedPage(ctx context.Context, key string, page *CachedFeedPage) error
	InvalidateFeed(ctx context.Context) error
}
