package mocks

import (
	"context"
	"errors"

	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockContentUsecase is a mock implementation of the content usecase interface
type MockContentUsecase struct {
	ShouldFailListItems  bool
	ShouldFailBulkAction bool
	ShouldFailCounts     bool

	FailError error

	MockItems  []usecasecontract.ContentItem
	MockTotal  int64
	MockCount  int64
	MockCounts usecasecontract.ContentCounts

	LastItemType string
	LastAction   string
	LastIDs      []string
}

var _ usecasecontract.IContentUseCase = (*MockContentUsecase)(nil)

func NewMockContentUsecase() *MockContentUsecase {
	return &MockContentUsecase{
		MockItems: []usecasecontract.ContentItem{
			{ID: "mock-post-id", Type: usecasecontract.ContentTypePosts, Title: "Meetup downtown"},
		},
		MockTotal:  1,
		MockCount:  2,
		MockCounts: usecasecontract.ContentCounts{Posts: 3, Projects: 2, Comments: 5},
	}
}

func (m *MockContentUsecase) failErr(fallback string) error {
	if m.FailError != nil {
		return m.FailError
	}
	return errors.New(fallback)
}

func (m *MockContentUsecase) ListItems(ctx context.Context, itemType, search, filter string, page, limit int) ([]usecasecontract.ContentItem, int64, error) {
	m.LastItemType = itemType
	if m.ShouldFailListItems {
		return nil, 0, m.failErr("list items failed")
	}
	return m.MockItems, m.MockTotal, nil
}

func (m *MockContentUsecase) BulkAction(ctx context.Context, itemType, action string, ids []string) (int64, error) {
	m.LastItemType = itemType
	m.LastAction = action
	m.LastIDs = ids
	if m.ShouldFailBulkAction {
		return 0, m.failErr("bulk action failed")
	}
	return m.MockCount, nil
}

func (m *MockContentUsecase) Counts(ctx context.Context) (*usecasecontract.ContentCounts, error) {
	if m.ShouldFailCounts {
		return nil, m.failErr("counts failed")
	}
	counts := m.MockCounts
	return &counts, nil
}
