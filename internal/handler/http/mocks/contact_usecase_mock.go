package mocks

import (
	"context"
	"errors"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockContactUsecase is a mock implementation of the contact usecase interface
type MockContactUsecase struct {
	ShouldFailSubmit          bool
	ShouldFailList            bool
	ShouldFailToggleResponded bool
	ShouldFailDelete          bool

	FailError error

	MockMessage entity.ContactMessage
	MockTotal   int64
}

var _ usecasecontract.IContactUseCase = (*MockContactUsecase)(nil)

func NewMockContactUsecase() *MockContactUsecase {
	return &MockContactUsecase{
		MockMessage: entity.ContactMessage{
			ID:      "mock-message-id",
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "Love the site.",
		},
		MockTotal: 1,
	}
}

func (m *MockContactUsecase) failErr(fallback string) error {
	if m.FailError != nil {
		return m.FailError
	}
	return errors.New(fallback)
}

func (m *MockContactUsecase) SubmitMessage(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	if m.ShouldFailSubmit {
		return nil, m.failErr("submit message failed")
	}
	return &m.MockMessage, nil
}

func (m *MockContactUsecase) ListMessages(ctx context.Context, page, limit int) ([]*entity.ContactMessage, int64, error) {
	if m.ShouldFailList {
		return nil, 0, m.failErr("list messages failed")
	}
	return []*entity.ContactMessage{&m.MockMessage}, m.MockTotal, nil
}

func (m *MockContactUsecase) ToggleResponded(ctx context.Context, messageID string) (*entity.ContactMessage, error) {
	if m.ShouldFailToggleResponded {
		return nil, m.failErr("toggle responded failed")
	}
	msg := m.MockMessage
	msg.IsResponded = !msg.IsResponded
	return &msg, nil
}

func (m *MockContactUsecase) DeleteMessage(ctx context.Context, messageID string) error {
	if m.ShouldFailDelete {
		return m.failErr("delete message failed")
	}
	return nil
}
