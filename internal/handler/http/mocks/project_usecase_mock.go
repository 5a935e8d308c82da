package mocks

import (
	"context"
	"errors"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockProjectUsecase is a mock implementation of the project usecase interface
type MockProjectUsecase struct {
	ShouldFailList   bool
	ShouldFailGet    bool
	ShouldFailCreate bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	FailError error

	MockProject entity.Project
	MockTotal   int64
}

var _ usecasecontract.IProjectUseCase = (*MockProjectUsecase)(nil)

func NewMockProjectUsecase() *MockProjectUsecase {
	return &MockProjectUsecase{
		MockProject: entity.Project{
			ID:          "mock-project-id",
			Title:       "Community Hub",
			Description: "Neighborhood event board.",
			TechStack:   []string{"Go", "MongoDB"},
			CreatorID:   "mock-admin-id",
		},
		MockTotal: 1,
	}
}

func (m *MockProjectUsecase) failErr(fallback string) error {
	if m.FailError != nil {
		return m.FailError
	}
	return errors.New(fallback)
}

func (m *MockProjectUsecase) ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error) {
	if m.ShouldFailList {
		return nil, 0, m.failErr("list projects failed")
	}
	return []*entity.Project{&m.MockProject}, m.MockTotal, nil
}

func (m *MockProjectUsecase) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	if m.ShouldFailGet {
		return nil, m.failErr("project not found")
	}
	return &m.MockProject, nil
}

func (m *MockProjectUsecase) CreateProject(ctx context.Context, creatorID string, input usecasecontract.ProjectInput) (*entity.Project, error) {
	if m.ShouldFailCreate {
		return nil, m.failErr("create project failed")
	}
	return &m.MockProject, nil
}

func (m *MockProjectUsecase) UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) (*entity.Project, error) {
	if m.ShouldFailUpdate {
		return nil, m.failErr("update project failed")
	}
	return &m.MockProject, nil
}

func (m *MockProjectUsecase) DeleteProject(ctx context.Context, projectID string) error {
	if m.ShouldFailDelete {
		return m.failErr("delete project failed")
	}
	return nil
}
