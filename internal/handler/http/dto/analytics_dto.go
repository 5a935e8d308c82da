package dto

// PageviewRequest is the payload of POST /analytics/pageview. Everything is
// optional except the page; the endpoint never rejects telemetry.
type PageviewRequest struct {
	Page        string `json:"page" binding:"required"`
	VisitorID   string `json:"visitorId,omitempty"`
	Referrer    string `json:"referrer,omitempty"`
	ScreenWidth int    `json:"screenWidth,omitempty"`
	DeviceType  string `json:"deviceType,omitempty"`
	Country     string `json:"country,omitempty"`
	Region      string `json:"region,omitempty"`
	City        string `json:"city,omitempty"`
}
