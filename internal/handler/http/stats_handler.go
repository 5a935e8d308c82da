package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

type StatsHandler struct {
	analyticsUsecase usecasecontract.IAnalyticsUseCase
}

func NewStatsHandler(analyticsUsecase usecasecontract.IAnalyticsUseCase) *StatsHandler {
	return &StatsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

// GetDashboardStats returns the admin landing-page counters.
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.GetDashboardStats(c.Request.Context())
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
