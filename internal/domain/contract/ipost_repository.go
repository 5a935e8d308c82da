package contract

import (
	"context"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// PostListOptions controls pagination, filtering and ordering of the feed.
type PostListOptions struct {
	Page     int
	Limit    int
	Location string
	// Sort is "" (pinned first, then newest) or "oldest".
	Sort string
}

// ContentQuery is the shared search/filter shape of the content-management
// dashboard. Filter is one of "", "pinned", "featured", "recent".
type ContentQuery struct {
	Search      string
	Filter      string
	RecentSince time.Time
	Page        int
	Limit       int
}

// IPostRepository abstracts post persistence, including the embedded
// comment subdocuments.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id string) (*entity.Post, error)
	ListPosts(ctx context.Context, opts PostListOptions) ([]*entity.Post, int64, error)
	UpdatePost(ctx context.Context, id string, updates map[string]interface{}) error
	DeletePost(ctx context.Context, id string) error
	SetPinned(ctx context.Context, id string, pinned bool) error

	AddComment(ctx context.Context, postID string, comment *entity.Comment) error
	RemoveComment(ctx context.Context, postID, commentID string) error

	// FindForContent applies the content-dashboard search/filter in the DB.
	FindForContent(ctx context.Context, q ContentQuery) ([]*entity.Post, int64, error)
	// PostsWithComments returns every post whose comment array is non-empty.
	PostsWithComments(ctx context.Context) ([]*entity.Post, error)

	BulkSetPinned(ctx context.Context, ids []string, pinned bool) (int64, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)

	CountPosts(ctx context.Context) (int64, error)
	// CountComments sums embedded comment-array sizes across all posts.
	CountComments(ctx context.Context) (int64, error)
}
