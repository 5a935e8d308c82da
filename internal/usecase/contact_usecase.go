package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

const ErrMsgMessageNotFound = "message not found"

// ContactUsecase implements the IContactUseCase interface.
type ContactUsecase struct {
	contactRepo   contract.IContactRepository
	uuidGenerator contract.IUUIDGenerator
	validator     usecasecontract.IValidator
	logger        usecasecontract.IAppLogger
}

// NewContactUsecase creates a new ContactUsecase instance.
func NewContactUsecase(
	contactRepo contract.IContactRepository,
	uuidGenerator contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *ContactUsecase {
	return &ContactUsecase{
		contactRepo:   contactRepo,
		uuidGenerator: uuidGenerator,
		validator:     validator,
		logger:        logger,
	}
}

// check if ContactUsecase implements the IContactUseCase
var _ usecasecontract.IContactUseCase = (*ContactUsecase)(nil)

// SubmitMessage stores a guest inquiry. No authentication required.
func (uc *ContactUsecase) SubmitMessage(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if message == "" {
		return nil, errors.New("message is required")
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	msg := &entity.ContactMessage{
		ID:      uc.uuidGenerator.NewUUID(),
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := uc.contactRepo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Errorf("failed to store contact message: %v", err)
		return nil, fmt.Errorf("failed to submit message")
	}
	return msg, nil
}

func (uc *ContactUsecase) ListMessages(ctx context.Context, page, limit int) ([]*entity.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.contactRepo.ListMessages(ctx, page, limit)
}

// ToggleResponded flips the responded flag of a message.
func (uc *ContactUsecase) ToggleResponded(ctx context.Context, messageID string) (*entity.ContactMessage, error) {
	msg, err := uc.contactRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if err := uc.contactRepo.SetResponded(ctx, messageID, !msg.IsResponded); err != nil {
		return nil, err
	}
	msg.IsResponded = !msg.IsResponded
	return msg, nil
}

func (uc *ContactUsecase) DeleteMessage(ctx context.Context, messageID string) error {
	return uc.contactRepo.DeleteMessage(ctx, messageID)
}
