package dto

import (
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// CreatePostRequest is the payload of POST /posts. The `postcontent` binding
// tag enforces the 280-character limit.
type CreatePostRequest struct {
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content" binding:"required,postcontent"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	Location  string     `json:"location,omitempty"`
}

// UpdatePostRequest is the payload of PUT /posts/:id.
type UpdatePostRequest struct {
	Title     *string    `json:"title,omitempty"`
	Content   *string    `json:"content,omitempty"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	Location  *string    `json:"location,omitempty"`
}

// CreateCommentRequest is the payload of POST /posts/:id/comments.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,postcontent"`
}

// PostListResponse is one page of the community feed.
type PostListResponse struct {
	Posts      []*entity.Post `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}
