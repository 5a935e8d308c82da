package mocks

import (
	"context"
	"errors"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the auth usecase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailSignup         bool
	ShouldFailLogin          bool
	ShouldFailLoginWithOAuth bool
	ShouldFailGetByID        bool
	ShouldFailUpdateProfile  bool

	// Error returned on failure; defaults to a generic message per method.
	FailError error

	// Return values
	MockUser  entity.User
	MockToken string

	// Last captured arguments
	LastSignupLocation string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Email:    "test@example.com",
			Name:     "Test User",
			Role:     entity.UserRoleMember,
			Location: "Detroit",
			Status:   entity.UserStatusActive,
		},
		MockToken: "mock_token",
	}
}

func (m *MockAuthUsecase) failErr(fallback string) error {
	if m.FailError != nil {
		return m.FailError
	}
	return errors.New(fallback)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, email, password, name, location string) (*entity.User, string, error) {
	m.LastSignupLocation = location
	if m.ShouldFailSignup {
		return nil, "", m.failErr("signup failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", m.failErr("invalid credentials")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) LoginWithOAuth(ctx context.Context, name, email string) (*entity.User, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return nil, "", m.failErr("login with OAuth failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, m.failErr("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, m.failErr("update profile failed")
	}
	return &m.MockUser, nil
}
