package dto

import (
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// CreateProjectRequest is the payload of POST /projects (admin only).
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	TechStack    []string `json:"techStack,omitempty"`
	PrototypeURL string   `json:"prototypeUrl,omitempty"`
	Image        string   `json:"image,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// UpdateProjectRequest is the payload of PUT /projects/:id (admin only).
type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	TechStack    *[]string `json:"techStack,omitempty"`
	PrototypeURL *string   `json:"prototypeUrl,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// ProjectListResponse is one page of the portfolio.
type ProjectListResponse struct {
	Projects   []*entity.Project `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}
