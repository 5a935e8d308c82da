package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IProjectRepository abstracts portfolio project persistence.
type IProjectRepository interface {
	CreateProject(ctx context.Context, project *entity.Project) error
	GetProjectByID(ctx context.Context, id string) (*entity.Project, error)
	ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error)
	UpdateProject(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteProject(ctx context.Context, id string) error

	FindForContent(ctx context.Context, q ContentQuery) ([]*entity.Project, int64, error)
	BulkSetFeatured(ctx context.Context, ids []string, featured bool) (int64, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)

	CountProjects(ctx context.Context) (int64, error)
}
