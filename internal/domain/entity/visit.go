package entity

import (
	"time"
)

// Visit is one recorded pageview event. Written fire-and-forget by the
// client on every navigation, read only through analytics aggregations.
type Visit struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Page        string        `bson:"page" json:"page"`
	VisitorID   string        `bson:"visitor_id" json:"visitorId"`
	Timestamp   time.Time     `bson:"timestamp" json:"timestamp"`
	Referrer    string        `bson:"referrer,omitempty" json:"referrer,omitempty"`
	UserAgent   string        `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	ScreenWidth int           `bson:"screen_width,omitempty" json:"screenWidth,omitempty"`
	DeviceType  string        `bson:"device_type,omitempty" json:"deviceType,omitempty"`
	Location    VisitLocation `bson:"location" json:"location"`
}

// VisitLocation is the coarse geo attribution of a visit. The client does not
// geolocate, so writes default to the platform's home region.
type VisitLocation struct {
	Country string `bson:"country" json:"country"`
	Region  string `bson:"region" json:"region"`
	City    string `bson:"city" json:"city"`
}

// DefaultVisitLocation returns the Detroit fallback used when a pageview
// carries no location of its own.
func DefaultVisitLocation() VisitLocation {
	return VisitLocation{Country: "US", Region: "Michigan", City: "Detroit"}
}

// DailyTraffic is one $group-by-day bucket of the traffic aggregation.
type DailyTraffic struct {
	Date     string `bson:"_id" json:"date"`
	Visits   int    `bson:"visits" json:"visits"`
	Visitors int    `bson:"visitors" json:"visitors"`
}

// DeviceCount is one device-type bucket of the traffic aggregation.
type DeviceCount struct {
	DeviceType string `bson:"_id" json:"deviceType"`
	Count      int    `bson:"count" json:"count"`
}

// PageCount is one page bucket of the top-pages aggregation.
type PageCount struct {
	Page  string `bson:"_id" json:"page"`
	Count int    `bson:"count" json:"count"`
}

// CityCount is one city bucket of the geographic aggregation.
type CityCount struct {
	City  string `bson:"_id" json:"city"`
	Count int    `bson:"count" json:"count"`
}

// AnalyticsData is the admin traffic-dashboard payload.
type AnalyticsData struct {
	TimeRange       string         `json:"timeRange"`
	DailyTraffic    []DailyTraffic `json:"dailyTraffic"`
	TotalVisits     int            `json:"totalVisits"`
	UniqueVisitors  int            `json:"uniqueVisitors"`
	DeviceBreakdown []DeviceCount  `json:"deviceBreakdown"`
	TopPages        []PageCount    `json:"topPages"`
	Comparison      float64        `json:"comparison"`
}

// DashboardStats is the admin overview payload of collection counts.
type DashboardStats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
	Projects int64 `json:"projects"`
	Messages int64 `json:"messages"`
	Visits   int64 `json:"visits"`
}
