package contract

import (
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// ITokenService issues and verifies the stateless bearer tokens used for
// authentication. There is no server-side session store.
type ITokenService interface {
	GenerateToken(userID string, role entity.UserRole) (string, error)
	ParseToken(tokenStr string) (*entity.Claims, error)
}
