package mocks

import (
	"context"
	"errors"
	"time"

	domaincontract "github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockPostUsecase is a mock implementation of the post usecase interface
type MockPostUsecase struct {
	ShouldFailList          bool
	ShouldFailGet           bool
	ShouldFailCreate        bool
	ShouldFailUpdate        bool
	ShouldFailDelete        bool
	ShouldFailTogglePin     bool
	ShouldFailAddComment    bool
	ShouldFailDeleteComment bool

	FailError error

	MockPost    entity.Post
	MockComment entity.Comment
	MockTotal   int64

	LastListOptions domaincontract.PostListOptions
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	return &MockPostUsecase{
		MockPost: entity.Post{
			ID:       "mock-post-id",
			AuthorID: "mock-user-id",
			Title:    "Meetup downtown",
			Content:  "First meetup of the season.",
			Location: "Detroit",
		},
		MockComment: entity.Comment{
			ID:         "mock-comment-id",
			AuthorID:   "mock-user-id",
			AuthorName: "Test User",
			Content:    "See you there.",
		},
		MockTotal: 1,
	}
}

func (m *MockPostUsecase) failErr(fallback string) error {
	if m.FailError != nil {
		return m.FailError
	}
	return errors.New(fallback)
}

func (m *MockPostUsecase) ListPosts(ctx context.Context, opts domaincontract.PostListOptions) ([]*entity.Post, int64, error) {
	m.LastListOptions = opts
	if m.ShouldFailList {
		return nil, 0, m.failErr("list posts failed")
	}
	return []*entity.Post{&m.MockPost}, m.MockTotal, nil
}

func (m *MockPostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	if m.ShouldFailGet {
		return nil, m.failErr("post not found")
	}
	return &m.MockPost, nil
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, authorID, title, content, location string, eventDate *time.Time) (*entity.Post, error) {
	if m.ShouldFailCreate {
		return nil, m.failErr("create post failed")
	}
	return &m.MockPost, nil
}

func (m *MockPostUsecase) UpdatePost(ctx context.Context, postID string, updates map[string]interface{}) (*entity.Post, error) {
	if m.ShouldFailUpdate {
		return nil, m.failErr("update post failed")
	}
	return &m.MockPost, nil
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, postID string) error {
	if m.ShouldFailDelete {
		return m.failErr("delete post failed")
	}
	return nil
}

func (m *MockPostUsecase) TogglePin(ctx context.Context, postID string) (*entity.Post, error) {
	if m.ShouldFailTogglePin {
		return nil, m.failErr("toggle pin failed")
	}
	post := m.MockPost
	post.IsPinned = !post.IsPinned
	return &post, nil
}

func (m *MockPostUsecase) AddComment(ctx context.Context, postID string, author *entity.User, content string) (*entity.Comment, error) {
	if m.ShouldFailAddComment {
		return nil, m.failErr("add comment failed")
	}
	return &m.MockComment, nil
}

func (m *MockPostUsecase) DeleteComment(ctx context.Context, postID, commentID string, requester *entity.User) error {
	if m.ShouldFailDeleteComment {
		return m.failErr("delete comment failed")
	}
	return nil
}
