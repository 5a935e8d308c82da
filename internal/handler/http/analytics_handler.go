package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	"github.com/wuddevdet/platform-api/internal/infrastructure/metrics"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

type AnalyticsHandler struct {
	analyticsUsecase usecasecontract.IAnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUsecase usecasecontract.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

// TrackPageview records a visit. Telemetry intake always answers 200: a
// malformed body or a storage failure must never break page rendering.
func (h *AnalyticsHandler) TrackPageview(c *gin.Context) {
	var req dto.PageviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		MessageHandler(c, http.StatusOK, "ok")
		return
	}

	visit := &entity.Visit{
		Page:        req.Page,
		VisitorID:   req.VisitorID,
		Referrer:    req.Referrer,
		UserAgent:   c.Request.UserAgent(),
		ScreenWidth: req.ScreenWidth,
		DeviceType:  req.DeviceType,
	}
	if req.City != "" || req.Region != "" || req.Country != "" {
		visit.Location = entity.VisitLocation{Country: req.Country, Region: req.Region, City: req.City}
	}

	h.analyticsUsecase.TrackPageview(c.Request.Context(), visit)
	metrics.CountPageview()
	MessageHandler(c, http.StatusOK, "ok")
}

// GetAnalyticsData returns the traffic dashboard payload. Admin-only route.
func (h *AnalyticsHandler) GetAnalyticsData(c *gin.Context) {
	timeRange := c.DefaultQuery("timeRange", "7d")
	data := h.analyticsUsecase.GetAnalyticsData(c.Request.Context(), timeRange)
	SuccessHandler(c, http.StatusOK, data)
}

// GetGeographicData returns visit counts by city. Admin-only route.
func (h *AnalyticsHandler) GetGeographicData(c *gin.Context) {
	timeRange := c.DefaultQuery("timeRange", "30d")
	cities := h.analyticsUsecase.GetGeographicData(c.Request.Context(), timeRange)
	SuccessHandler(c, http.StatusOK, gin.H{"cities": cities})
}
