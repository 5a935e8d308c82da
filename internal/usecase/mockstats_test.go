package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRangeDays(t *testing.T) {
	assert.Equal(t, 1, TimeRangeDays("24h"))
	assert.Equal(t, 7, TimeRangeDays("7d"))
	assert.Equal(t, 30, TimeRangeDays("30d"))
	assert.Equal(t, 90, TimeRangeDays("90d"))
	assert.Equal(t, 7, TimeRangeDays("yesterday"))
	assert.Equal(t, 7, TimeRangeDays(""))
}

func TestFallbackAnalyticsIsStableWithinADay(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	first := FallbackAnalytics("7d", now)
	second := FallbackAnalytics("7d", now.Add(3*time.Hour))
	assert.Equal(t, first, second)

	nextDay := FallbackAnalytics("7d", now.AddDate(0, 0, 1))
	assert.NotEqual(t, first.DailyTraffic, nextDay.DailyTraffic)
}

func TestFallbackAnalyticsShape(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	for _, timeRange := range []string{"24h", "7d", "30d", "90d"} {
		data := FallbackAnalytics(timeRange, now)
		require.NotNil(t, data)
		assert.Equal(t, timeRange, data.TimeRange)
		assert.Len(t, data.DailyTraffic, TimeRangeDays(timeRange))
		assert.NotEmpty(t, data.DeviceBreakdown)
		assert.NotEmpty(t, data.TopPages)

		total := 0
		for _, d := range data.DailyTraffic {
			assert.Positive(t, d.Visits)
			assert.Positive(t, d.Visitors)
			total += d.Visits
		}
		assert.Equal(t, total, data.TotalVisits)

		// The last bucket is today, formatted as a calendar date.
		last := data.DailyTraffic[len(data.DailyTraffic)-1]
		assert.Equal(t, now.Format("2006-01-02"), last.Date)
	}
}

func TestFallbackGeographicLeadsWithDetroit(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	cities := FallbackGeographic(now)
	require.NotEmpty(t, cities)
	assert.Equal(t, "Detroit", cities[0].City)
	for _, c := range cities {
		assert.Positive(t, c.Count)
	}

	assert.Equal(t, cities, FallbackGeographic(now.Add(6*time.Hour)))
}

func TestFallbackComparisonBounded(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	for _, timeRange := range []string{"24h", "7d", "30d", "90d"} {
		cmp := FallbackComparison(timeRange, now)
		assert.GreaterOrEqual(t, cmp, -20.0)
		assert.Less(t, cmp, 20.0)
	}
}
