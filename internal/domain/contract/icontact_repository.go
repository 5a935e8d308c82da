package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IContactRepository abstracts contact-message persistence.
type IContactRepository interface {
	CreateMessage(ctx context.Context, msg *entity.ContactMessage) error
	GetMessageByID(ctx context.Context, id string) (*entity.ContactMessage, error)
	ListMessages(ctx context.Context, page, limit int) ([]*entity.ContactMessage, int64, error)
	SetResponded(ctx context.Context, id string, responded bool) error
	DeleteMessage(ctx context.Context, id string) error
	CountMessages(ctx context.Context) (int64, error)
}
