package mocks

import (
	"context"
	"errors"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockAnalyticsUsecase is a mock implementation of the analytics usecase interface
type MockAnalyticsUsecase struct {
	ShouldFailDashboardStats bool

	FailError error

	MockData   entity.AnalyticsData
	MockCities []entity.CityCount
	MockStats  entity.DashboardStats

	TrackedVisits []*entity.Visit
}

var _ usecasecontract.IAnalyticsUseCase = (*MockAnalyticsUsecase)(nil)

func NewMockAnalyticsUsecase() *MockAnalyticsUsecase {
	return &MockAnalyticsUsecase{
		MockData: entity.AnalyticsData{
			TimeRange:   "7d",
			TotalVisits: 42,
			DailyTraffic: []entity.DailyTraffic{
				{Date: "2025-06-01", Visits: 42, Visitors: 30},
			},
		},
		MockCities: []entity.CityCount{{City: "Detroit", Count: 12}},
		MockStats:  entity.DashboardStats{Users: 4, Posts: 9, Comments: 15, Projects: 2, Messages: 3, Visits: 42},
	}
}

func (m *MockAnalyticsUsecase) TrackPageview(ctx context.Context, visit *entity.Visit) {
	m.TrackedVisits = append(m.TrackedVisits, visit)
}

func (m *MockAnalyticsUsecase) GetAnalyticsData(ctx context.Context, timeRange string) *entity.AnalyticsData {
	data := m.MockData
	data.TimeRange = timeRange
	return &data
}

func (m *MockAnalyticsUsecase) GetGeographicData(ctx context.Context, timeRange string) []entity.CityCount {
	return m.MockCities
}

func (m *MockAnalyticsUsecase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	if m.ShouldFailDashboardStats {
		if m.FailError != nil {
			return nil, m.FailError
		}
		return nil, errors.New("dashboard stats failed")
	}
	stats := m.MockStats
	return &stats, nil
}
