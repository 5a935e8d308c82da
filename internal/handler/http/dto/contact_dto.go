package dto

import (
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// ContactRequest is the payload of the public POST /contact.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// MessageListResponse is one page of the admin contact inbox.
type MessageListResponse struct {
	Messages   []*entity.ContactMessage `json:"messages"`
	Pagination Pagination               `json:"pagination"`
}
