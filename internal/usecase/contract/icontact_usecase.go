package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IContactUseCase covers guest contact-message intake and its admin triage.
type IContactUseCase interface {
	SubmitMessage(ctx context.Context, name, email, message string) (*entity.ContactMessage, error)
	ListMessages(ctx context.Context, page, limit int) ([]*entity.ContactMessage, int64, error)
	ToggleResponded(ctx context.Context, messageID string) (*entity.ContactMessage, error)
	DeleteMessage(ctx context.Context, messageID string) error
}
