package contract

import (
	"context"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// IVisitRepository abstracts pageview storage and its analytics aggregations.
type IVisitRepository interface {
	InsertVisit(ctx context.Context, visit *entity.Visit) error
	DailyTraffic(ctx context.Context, since time.Time) ([]entity.DailyTraffic, error)
	DeviceBreakdown(ctx context.Context, since time.Time) ([]entity.DeviceCount, error)
	TopPages(ctx context.Context, since time.Time, limit int) ([]entity.PageCount, error)
	VisitsByCity(ctx context.Context, since time.Time) ([]entity.CityCount, error)
	CountVisits(ctx context.Context) (int64, error)
}
