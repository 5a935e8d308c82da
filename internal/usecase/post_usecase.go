package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	"github.com/wuddevdet/platform-api/internal/infrastructure/store"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

const (
	ErrMsgPostNotFound    = "post not found"
	ErrMsgCommentNotFound = "comment not found"
	ErrMsgContentTooLong  = "content exceeds 280 characters"
	ErrMsgForbidden       = "not allowed"
)

// PostUsecase implements the IPostUseCase interface.
type PostUsecase struct {
	postRepo      contract.IPostRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	feedCache     contract.IFeedCache
}

// NewPostUsecase creates a new PostUsecase instance.
func NewPostUsecase(
	postRepo contract.IPostRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *PostUsecase {
	return &PostUsecase{
		postRepo:      postRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check if PostUsecase implements the IPostUseCase
var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// SetFeedCache attaches the optional Redis feed cache.
func (uc *PostUsecase) SetFeedCache(cache contract.IFeedCache) {
	uc.feedCache = cache
}

// ListPosts returns one feed page, served from cache when possible.
func (uc *PostUsecase) ListPosts(ctx context.Context, opts contract.PostListOptions) ([]*entity.Post, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 || opts.Limit > 100 {
		opts.Limit = 10
	}

	key := store.FeedPageKey(opts.Page, opts.Limit, opts.Location, opts.Sort)
	if uc.feedCache != nil {
		if page, ok, err := uc.feedCache.GetFeedPage(ctx, key); err == nil && ok {
			return page.Posts, page.Total, nil
		} else if err != nil {
			uc.logger.Warnf("feed cache read failed: %v", err)
		}
	}

	posts, total, err := uc.postRepo.ListPosts(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	if uc.feedCache != nil {
		if err := uc.feedCache.SetFeedPage(ctx, key, &contract.CachedFeedPage{Posts: posts, Total: total}); err != nil {
			uc.logger.Warnf("feed cache write failed: %v", err)
		}
	}
	return posts, total, nil
}

// GetPost fetches one post with its author and comments.
func (uc *PostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	return uc.postRepo.GetPostByID(ctx, postID)
}

// CreatePost validates and stores a new feed entry.
func (uc *PostUsecase) CreatePost(ctx context.Context, authorID, title, content, location string, eventDate *time.Time) (*entity.Post, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}
	if entity.ContentTooLong(content) {
		return nil, errors.New(ErrMsgContentTooLong)
	}

	post := &entity.Post{
		ID:        uc.uuidGenerator.NewUUID(),
		Title:     title,
		Content:   content,
		EventDate: eventDate,
		Location:  location,
		AuthorID:  authorID,
		Comments:  []entity.Comment{},
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post")
	}
	uc.invalidateFeed(ctx)
	return post, nil
}

// UpdatePost applies edits to a post. Ownership is enforced by the routing
// layer; this only guards field-level rules.
func (uc *PostUsecase) UpdatePost(ctx context.Context, postID string, updates map[string]interface{}) (*entity.Post, error) {
	allowed := map[string]bool{"title": true, "content": true, "location": true, "event_date": true}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, errors.New("no updatable fields provided")
	}
	if content, ok := filtered["content"].(string); ok && entity.ContentTooLong(content) {
		return nil, errors.New(ErrMsgContentTooLong)
	}

	if err := uc.postRepo.UpdatePost(ctx, postID, filtered); err != nil {
		return nil, err
	}
	uc.invalidateFeed(ctx)
	return uc.postRepo.GetPostByID(ctx, postID)
}

// DeletePost removes a post and its embedded comments.
func (uc *PostUsecase) DeletePost(ctx context.Context, postID string) error {
	if err := uc.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}
	uc.invalidateFeed(ctx)
	return nil
}

// TogglePin flips the pinned flag. Admin-only, enforced by the routing layer.
func (uc *PostUsecase) TogglePin(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := uc.postRepo.SetPinned(ctx, postID, !post.IsPinned); err != nil {
		return nil, err
	}
	post.IsPinned = !post.IsPinned
	uc.invalidateFeed(ctx)
	return post, nil
}

// AddComment appends a comment authored by the requester.
func (uc *PostUsecase) AddComment(ctx context.Context, postID string, author *entity.User, content string) (*entity.Comment, error) {
	if content == "" {
		return nil, errors.New("content is required")
	}
	if entity.ContentTooLong(content) {
		return nil, errors.New(ErrMsgContentTooLong)
	}

	comment := &entity.Comment{
		ID:         uc.uuidGenerator.NewUUID(),
		Content:    content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  time.Now(),
	}
	if err := uc.postRepo.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the comment's author or an admin may
// delete; this is a manual equality check, not the generic owner middleware,
// because the comment lives inside the post document.
func (uc *PostUsecase) DeleteComment(ctx context.Context, postID, commentID string, requester *entity.User) error {
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	var target *entity.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return errors.New(ErrMsgCommentNotFound)
	}
	if target.AuthorID != requester.ID && requester.Role != entity.UserRoleAdmin {
		return errors.New(ErrMsgForbidden)
	}

	return uc.postRepo.RemoveComment(ctx, postID, commentID)
}

// invalidateFeed drops cached feed pages after any post write.
func (uc *PostUsecase) invalidateFeed(ctx context.Context) {
	if uc.feedCache == nil {
		return
	}
	if err := uc.feedCache.InvalidateFeed(ctx); err != nil {
		uc.logger.Warnf("feed cache invalidation failed: %v", err)
	}
}
