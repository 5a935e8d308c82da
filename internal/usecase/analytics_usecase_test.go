package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

type fakeVisitRepo struct {
	visits []*entity.Visit
	daily  []entity.DailyTraffic
	cities []entity.CityCount

	insertErr    error
	aggregateErr error
}

var _ contract.IVisitRepository = (*fakeVisitRepo)(nil)

func (r *fakeVisitRepo) InsertVisit(ctx context.Context, visit *entity.Visit) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.visits = append(r.visits, visit)
	return nil
}

func (r *fakeVisitRepo) DailyTraffic(ctx context.Context, since time.Time) ([]entity.DailyTraffic, error) {
	return r.daily, r.aggregateErr
}

func (r *fakeVisitRepo) DeviceBreakdown(ctx context.Context, since time.Time) ([]entity.DeviceCount, error) {
	return []entity.DeviceCount{{DeviceType: "desktop", Count: 5}}, r.aggregateErr
}

func (r *fakeVisitRepo) TopPages(ctx context.Context, since time.Time, limit int) ([]entity.PageCount, error) {
	return []entity.PageCount{{Page: "/", Count: 5}}, r.aggregateErr
}

func (r *fakeVisitRepo) VisitsByCity(ctx context.Context, since time.Time) ([]entity.CityCount, error) {
	return r.cities, r.aggregateErr
}

func (r *fakeVisitRepo) CountVisits(ctx context.Context) (int64, error) {
	return int64(len(r.visits)), nil
}

func newAnalyticsUsecaseForTest(visitRepo *fakeVisitRepo) (*AnalyticsUsecase, *fakeUserRepo, *fakePostRepo, *fakeProjectRepo, *fakeContactRepo) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	projectRepo := newFakeProjectRepo()
	contactRepo := newFakeContactRepo()
	uc := NewAnalyticsUsecase(visitRepo, userRepo, postRepo, projectRepo, contactRepo, nopLogger{})
	return uc, userRepo, postRepo, projectRepo, contactRepo
}

func TestTrackPageviewSwallowsStorageErrors(t *testing.T) {
	visitRepo := &fakeVisitRepo{insertErr: errors.New("mongo down")}
	uc, _, _, _, _ := newAnalyticsUsecaseForTest(visitRepo)

	// Must not panic or surface the error.
	uc.TrackPageview(context.Background(), &entity.Visit{Page: "/community"})
	assert.Empty(t, visitRepo.visits)

	visitRepo.insertErr = nil
	uc.TrackPageview(context.Background(), &entity.Visit{Page: "/community"})
	assert.Len(t, visitRepo.visits, 1)
}

func TestGetAnalyticsDataPrefersRealAggregates(t *testing.T) {
	visitRepo := &fakeVisitRepo{
		daily: []entity.DailyTraffic{
			{Date: "2025-06-14", Visits: 10, Visitors: 7},
			{Date: "2025-06-15", Visits: 20, Visitors: 12},
		},
	}
	uc, _, _, _, _ := newAnalyticsUsecaseForTest(visitRepo)

	data := uc.GetAnalyticsData(context.Background(), "7d")
	require.NotNil(t, data)
	assert.Equal(t, visitRepo.daily, data.DailyTraffic)
	assert.Equal(t, 30, data.TotalVisits)
	assert.Equal(t, 19, data.UniqueVisitors)
}

func TestGetAnalyticsDataFallsBackWhenEmptyOrErroring(t *testing.T) {
	for _, visitRepo := range []*fakeVisitRepo{
		{},
		{aggregateErr: errors.New("aggregation failed")},
	} {
		uc, _, _, _, _ := newAnalyticsUsecaseForTest(visitRepo)

		data := uc.GetAnalyticsData(context.Background(), "7d")
		require.NotNil(t, data)
		assert.NotEmpty(t, data.DailyTraffic)
		assert.Len(t, data.DailyTraffic, TimeRangeDays("7d"))
	}
}

func TestGetGeographicDataFallsBack(t *testing.T) {
	uc, _, _, _, _ := newAnalyticsUsecaseForTest(&fakeVisitRepo{})

	cities := uc.GetGeographicData(context.Background(), "30d")
	require.NotEmpty(t, cities)
	assert.Equal(t, "Detroit", cities[0].City)
}

func TestGetGeographicDataUsesRealCounts(t *testing.T) {
	visitRepo := &fakeVisitRepo{cities: []entity.CityCount{{City: "Ypsilanti", Count: 3}}}
	uc, _, _, _, _ := newAnalyticsUsecaseForTest(visitRepo)

	cities := uc.GetGeographicData(context.Background(), "30d")
	assert.Equal(t, visitRepo.cities, cities)
}

func TestGetDashboardStatsCountsEveryCollection(t *testing.T) {
	visitRepo := &fakeVisitRepo{visits: []*entity.Visit{{Page: "/"}}}
	uc, userRepo, postRepo, projectRepo, contactRepo := newAnalyticsUsecaseForTest(visitRepo)

	seedUser(userRepo, "member-1", entity.UserRoleMember)
	seedUser(userRepo, "admin-1", entity.UserRoleAdmin)
	seedPostWithComments(postRepo, "post-1", "Meetup", entity.Comment{ID: "c-1"}, entity.Comment{ID: "c-2"})
	projectRepo.projects["proj-1"] = &entity.Project{ID: "proj-1"}
	contactRepo.messages["msg-1"] = &entity.ContactMessage{ID: "msg-1"}

	stats, err := uc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		Users:    2,
		Posts:    1,
		Comments: 2,
		Projects: 1,
		Messages: 1,
		Visits:   1,
	}, stats)
}
