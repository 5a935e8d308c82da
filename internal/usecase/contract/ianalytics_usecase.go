package contract

import (
	"context"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IAnalyticsUseCase covers pageview intake and the admin analytics views.
type IAnalyticsUseCase interface {
	// TrackPageview is fire-and-forget: storage failures are logged, never
	// surfaced to the caller.
	TrackPageview(ctx context.Context, visit *entity.Visit)
	GetAnalyticsData(ctx context.Context, timeRange string) *entity.AnalyticsData
	GetGeographicData(ctx context.Context, timeRange string) []entity.CityCount
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
