package contract

import (
	"context"
	"time"
)

// Content item types accepted by the moderation dashboard.
const (
	ContentTypePosts    = "posts"
	ContentTypeProjects = "projects"
	ContentTypeComments = "comments"
)

// ContentItem is the uniform row shape the moderation table renders.
// PostID/PostTitle are only set for the flattened "comments" pseudo-type.
type ContentItem struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	IsPinned   bool      `json:"isPinned,omitempty"`
	Featured   bool      `json:"featured,omitempty"`
	PostID     string    `json:"postId,omitempty"`
	PostTitle  string    `json:"postTitle,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ContentCounts is the per-type total shown in the dashboard tabs.
type ContentCounts struct {
	Posts    int64 `json:"posts"`
	Projects int64 `json:"projects"`
	Comments int64 `json:"comments"`
}

// IContentUseCase covers the cross-model moderation dashboard: unified
// listing, bulk actions and per-type counts.
type IContentUseCase interface {
	ListItems(ctx context.Context, itemType, search, filter string, page, limit int) ([]ContentItem, int64, error)
	BulkAction(ctx context.Context, itemType, action string, ids []string) (int64, error)
	Counts(ctx context.Context) (*ContentCounts, error)
}
