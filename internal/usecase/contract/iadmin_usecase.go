package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IAdminUseCase covers user administration from the dashboard.
type IAdminUseCase interface {
	ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error)
	// DeleteUser removes targetID unless it equals actorID.
	DeleteUser(ctx context.Context, actorID, targetID string) error
	UpdateUserRole(ctx context.Context, userID, role string) (*entity.User, error)
}
