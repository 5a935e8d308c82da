package usecase

import (
	"context"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// AnalyticsUsecase implements the IAnalyticsUseCase interface.
type AnalyticsUsecase struct {
	visitRepo   contract.IVisitRepository
	userRepo    contract.IUserRepository
	postRepo    contract.IPostRepository
	projectRepo contract.IProjectRepository
	contactRepo contract.IContactRepository
	logger      usecasecontract.IAppLogger
}

// NewAnalyticsUsecase creates a new AnalyticsUsecase instance.
func NewAnalyticsUsecase(
	visitRepo contract.IVisitRepository,
	userRepo contract.IUserRepository,
	postRepo contract.IPostRepository,
	projectRepo contract.IProjectRepository,
	contactRepo contract.IContactRepository,
	logger usecasecontract.IAppLogger,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		visitRepo:   visitRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		projectRepo: projectRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// check if AnalyticsUsecase implements the IAnalyticsUseCase
var _ usecasecontract.IAnalyticsUseCase = (*AnalyticsUsecase)(nil)

// TrackPageview records a visit. Failures are logged and swallowed so the
// tracking endpoint never breaks page rendering.
func (uc *AnalyticsUsecase) TrackPageview(ctx context.Context, visit *entity.Visit) {
	if err := uc.visitRepo.InsertVisit(ctx, visit); err != nil {
		uc.logger.Warnf("failed to record pageview: %v", err)
	}
}

// GetAnalyticsData builds the traffic dashboard payload. When the visits
// collection is empty or the aggregation fails, the shared fallback
// generator substitutes data of identical shape, so DailyTraffic is never
// empty and the dashboard always renders.
func (uc *AnalyticsUsecase) GetAnalyticsData(ctx context.Context, timeRange string) *entity.AnalyticsData {
	now := time.Now()
	since := now.AddDate(0, 0, -TimeRangeDays(timeRange))

	daily, err := uc.visitRepo.DailyTraffic(ctx, since)
	if err != nil || len(daily) == 0 {
		if err != nil {
			uc.logger.Warnf("daily traffic aggregation failed, serving fallback: %v", err)
		}
		return FallbackAnalytics(timeRange, now)
	}

	totalVisits := 0
	totalVisitors := 0
	for _, d := range daily {
		totalVisits += d.Visits
		totalVisitors += d.Visitors
	}

	devices, err := uc.visitRepo.DeviceBreakdown(ctx, since)
	if err != nil {
		uc.logger.Warnf("device breakdown aggregation failed, serving fallback: %v", err)
		return FallbackAnalytics(timeRange, now)
	}
	pages, err := uc.visitRepo.TopPages(ctx, since, 10)
	if err != nil {
		uc.logger.Warnf("top pages aggregation failed, serving fallback: %v", err)
		return FallbackAnalytics(timeRange, now)
	}

	return &entity.AnalyticsData{
		TimeRange:       timeRange,
		DailyTraffic:    daily,
		TotalVisits:     totalVisits,
		UniqueVisitors:  totalVisitors,
		DeviceBreakdown: devices,
		TopPages:        pages,
		Comparison:      FallbackComparison(timeRange, now),
	}
}

// GetGeographicData returns visit counts by city, falling back to the
// hardcoded Michigan list on error or an empty collection.
func (uc *AnalyticsUsecase) GetGeographicData(ctx context.Context, timeRange string) []entity.CityCount {
	now := time.Now()
	since := now.AddDate(0, 0, -TimeRangeDays(timeRange))

	cities, err := uc.visitRepo.VisitsByCity(ctx, since)
	if err != nil || len(cities) == 0 {
		if err != nil {
			uc.logger.Warnf("geographic aggregation failed, serving fallback: %v", err)
		}
		return FallbackGeographic(now)
	}
	return cities
}

// GetDashboardStats fetches the per-collection totals concurrently.
func (uc *AnalyticsUsecase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}
	tasks := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.Users, uc.userRepo.CountUsers},
		{&stats.Posts, uc.postRepo.CountPosts},
		{&stats.Comments, uc.postRepo.CountComments},
		{&stats.Projects, uc.projectRepo.CountProjects},
		{&stats.Messages, uc.contactRepo.CountMessages},
		{&stats.Visits, uc.visitRepo.CountVisits},
	}

	results := runParallel(ctx, tasks)
	for _, err := range results {
		if err != nil {
			return nil, err
		}
	}
	return stats, nil
}
