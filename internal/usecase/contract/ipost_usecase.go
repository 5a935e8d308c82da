package contract

import (
	"context"
	"time"

	domaincontract "github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IPostUseCase covers the community feed: posts, embedded comments, pinning.
type IPostUseCase interface {
	ListPosts(ctx context.Context, opts domaincontract.PostListOptions) ([]*entity.Post, int64, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	CreatePost(ctx context.Context, authorID, title, content, location string, eventDate *time.Time) (*entity.Post, error)
	UpdatePost(ctx context.Context, postID string, updates map[string]interface{}) (*entity.Post, error)
	DeletePost(ctx context.Context, postID string) error
	TogglePin(ctx context.Context, postID string) (*entity.Post, error)

	AddComment(ctx context.Context, postID string, author *entity.User, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string, requester *entity.User) error
}
