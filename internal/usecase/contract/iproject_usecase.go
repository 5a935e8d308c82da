package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// ProjectInput carries the writable fields of a portfolio project.
type ProjectInput struct {
	Title        string
	Description  string
	TechStack    []string
	PrototypeURL string
	Image        string
	Featured     bool
}

// IProjectUseCase covers the portfolio showcase. Writes are admin-only,
// enforced at the routing layer.
type IProjectUseCase interface {
	ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error)
	GetProject(ctx context.Context, projectID string) (*entity.Project, error)
	CreateProject(ctx context.Context, creatorID string, input ProjectInput) (*entity.Project, error)
	UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) (*entity.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}
