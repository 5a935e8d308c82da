package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

const ErrMsgProjectNotFound = "project not found"

// ProjectUsecase implements the IProjectUseCase interface.
type ProjectUsecase struct {
	projectRepo   contract.IProjectRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

// NewProjectUsecase creates a new ProjectUsecase instance.
func NewProjectUsecase(
	projectRepo contract.IProjectRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo:   projectRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check if ProjectUsecase implements the IProjectUseCase
var _ usecasecontract.IProjectUseCase = (*ProjectUsecase)(nil)

func (uc *ProjectUsecase) ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return uc.projectRepo.ListProjects(ctx, page, limit)
}

func (uc *ProjectUsecase) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	return uc.projectRepo.GetProjectByID(ctx, projectID)
}

// CreateProject stores a new portfolio entry. Admin-only, enforced by the
// routing layer.
func (uc *ProjectUsecase) CreateProject(ctx context.Context, creatorID string, input usecasecontract.ProjectInput) (*entity.Project, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}
	if input.Description == "" {
		return nil, errors.New("description is required")
	}

	project := &entity.Project{
		ID:           uc.uuidGenerator.NewUUID(),
		Title:        input.Title,
		Description:  input.Description,
		TechStack:    input.TechStack,
		PrototypeURL: input.PrototypeURL,
		Image:        input.Image,
		Featured:     input.Featured,
		CreatorID:    creatorID,
	}
	if err := uc.projectRepo.CreateProject(ctx, project); err != nil {
		uc.logger.Errorf("failed to create project: %v", err)
		return nil, fmt.Errorf("failed to create project")
	}
	return project, nil
}

// UpdateProject applies edits to a project.
func (uc *ProjectUsecase) UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) (*entity.Project, error) {
	allowed := map[string]bool{
		"title": true, "description": true, "tech_stack": true,
		"prototype_url": true, "image": true, "featured": true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, errors.New("no updatable fields provided")
	}

	if err := uc.projectRepo.UpdateProject(ctx, projectID, filtered); err != nil {
		return nil, err
	}
	return uc.projectRepo.GetProjectByID(ctx, projectID)
}

func (uc *ProjectUsecase) DeleteProject(ctx context.Context, projectID string) error {
	return uc.projectRepo.DeleteProject(ctx, projectID)
}
