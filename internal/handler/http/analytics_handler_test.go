package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/wuddevdet/platform-api/internal/handler/http"
	dto "github.com/wuddevdet/platform-api/internal/handler/http/dto"
	mocks "github.com/wuddevdet/platform-api/internal/handler/http/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnalyticsRouter(h *handler.AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.POST("/analytics/pageview", h.TrackPageview)
	r.GET("/analytics/data", h.GetAnalyticsData)
	r.GET("/analytics/geographic", h.GetGeographicData)
	return r
}

func TestTrackPageview(t *testing.T) {
	mockUsecase := mocks.NewMockAnalyticsUsecase()
	r := setupAnalyticsRouter(handler.NewAnalyticsHandler(mockUsecase))

	w := postJSON(r, "/analytics/pageview", dto.PageviewRequest{
		Page:       "/community",
		DeviceType: "mobile",
		City:       "Ferndale",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockUsecase.TrackedVisits, 1)
	visit := mockUsecase.TrackedVisits[0]
	assert.Equal(t, "/community", visit.Page)
	assert.Equal(t, "mobile", visit.DeviceType)
	assert.Equal(t, "Ferndale", visit.Location.City)
}

func TestTrackPageview_MalformedBodyStillOK(t *testing.T) {
	mockUsecase := mocks.NewMockAnalyticsUsecase()
	r := setupAnalyticsRouter(handler.NewAnalyticsHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/analytics/pageview", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUsecase.TrackedVisits)
}

func TestGetAnalyticsData_DefaultRange(t *testing.T) {
	mockUsecase := mocks.NewMockAnalyticsUsecase()
	r := setupAnalyticsRouter(handler.NewAnalyticsHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/analytics/data", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"timeRange":"7d"`)
	assert.Contains(t, w.Body.String(), "dailyTraffic")
}

func TestGetGeographicData(t *testing.T) {
	mockUsecase := mocks.NewMockAnalyticsUsecase()
	r := setupAnalyticsRouter(handler.NewAnalyticsHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/analytics/geographic", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Detroit")
}
