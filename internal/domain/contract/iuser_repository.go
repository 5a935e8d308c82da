package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IUserRepository abstracts user persistence.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	UpdateUserRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)
}
