package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

const (
	ErrMsgSelfDelete  = "cannot delete your own account"
	ErrMsgInvalidRole = "invalid role"
)

// AdminUsecase implements the IAdminUseCase interface.
type AdminUsecase struct {
	userRepo contract.IUserRepository
	logger   usecasecontract.IAppLogger
}

// NewAdminUsecase creates a new AdminUsecase instance.
func NewAdminUsecase(userRepo contract.IUserRepository, logger usecasecontract.IAppLogger) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, logger: logger}
}

// check if AdminUsecase implements the IAdminUseCase
var _ usecasecontract.IAdminUseCase = (*AdminUsecase)(nil)

func (uc *AdminUsecase) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.userRepo.ListUsers(ctx, page, limit)
}

// DeleteUser removes a member account. Admins cannot delete themselves.
func (uc *AdminUsecase) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return errors.New(ErrMsgSelfDelete)
	}
	return uc.userRepo.DeleteUser(ctx, targetID)
}

// UpdateUserRole changes a user's role after validating enum membership.
func (uc *AdminUsecase) UpdateUserRole(ctx context.Context, userID, role string) (*entity.User, error) {
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidRole, role)
	}
	return uc.userRepo.UpdateUserRole(ctx, userID, entity.UserRole(role))
}
