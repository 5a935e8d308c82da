package mocks

import (
	"context"
	"errors"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockAdminUsecase is a mock implementation of the admin usecase interface
type MockAdminUsecase struct {
	ShouldFailListUsers  bool
	ShouldFailDeleteUser bool
	ShouldFailUpdateRole bool

	FailError error

	MockUser  entity.User
	MockTotal int64

	LastActorID  string
	LastTargetID string
	LastRole     string
}

var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Email:    "test@example.com",
			Name:     "Test User",
			Role:     entity.UserRoleMember,
			Location: "Detroit",
			Status:   entity.UserStatusActive,
		},
		MockTotal: 1,
	}
}

func (m *MockAdminUsecase) failErr(fallback string) error {
	if m.FailError != nil {
		return m.FailError
	}
	return errors.New(fallback)
}

func (m *MockAdminUsecase) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	if m.ShouldFailListUsers {
		return nil, 0, m.failErr("list users failed")
	}
	return []*entity.User{&m.MockUser}, m.MockTotal, nil
}

func (m *MockAdminUsecase) DeleteUser(ctx context.Context, actorID, targetID string) error {
	m.LastActorID = actorID
	m.LastTargetID = targetID
	if m.ShouldFailDeleteUser {
		return m.failErr("delete user failed")
	}
	return nil
}

func (m *MockAdminUsecase) UpdateUserRole(ctx context.Context, userID, role string) (*entity.User, error) {
	m.LastRole = role
	if m.ShouldFailUpdateRole {
		return nil, m.failErr("update role failed")
	}
	user := m.MockUser
	user.Role = entity.UserRole(role)
	return &user, nil
}
