package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IAuthUseCase covers signup, login and profile access for the current user.
type IAuthUseCase interface {
	Signup(ctx context.Context, email, password, name, location string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	LoginWithOAuth(ctx context.Context, name, email string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
}
