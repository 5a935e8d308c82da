package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/wuddevdet/platform-api/internal/handler/http"
	dto "github.com/wuddevdet/platform-api/internal/handler/http/dto"
	mocks "github.com/wuddevdet/platform-api/internal/handler/http/mocks"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"

	"github.com/stretchr/testify/assert"
)

func setupContentRouter(h *handler.ContentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/content/items", h.ListItems)
	r.POST("/content/bulk", h.BulkAction)
	r.GET("/content/counts", h.Counts)
	return r
}

func TestListItems_DefaultsToPosts(t *testing.T) {
	mockUsecase := mocks.NewMockContentUsecase()
	r := setupContentRouter(handler.NewContentHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content/items", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecasecontract.ContentTypePosts, mockUsecase.LastItemType)
	assert.Contains(t, w.Body.String(), "Meetup downtown")
}

func TestListItems_UnknownType(t *testing.T) {
	mockUsecase := mocks.NewMockContentUsecase()
	mockUsecase.ShouldFailListItems = true
	r := setupContentRouter(handler.NewContentHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content/items?type=users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkAction(t *testing.T) {
	mockUsecase := mocks.NewMockContentUsecase()
	r := setupContentRouter(handler.NewContentHandler(mockUsecase))

	w := postJSON(r, "/content/bulk", dto.BulkActionRequest{
		ItemType: usecasecontract.ContentTypePosts,
		Action:   "pin",
		IDs:      []string{"post-1", "post-2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
	assert.Equal(t, "pin", mockUsecase.LastAction)
	assert.Equal(t, []string{"post-1", "post-2"}, mockUsecase.LastIDs)
}

func TestBulkAction_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockContentUsecase()
	r := setupContentRouter(handler.NewContentHandler(mockUsecase))

	w := postJSON(r, "/content/bulk", map[string]interface{}{"action": "pin"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUsecase.LastAction)
}

func TestCounts(t *testing.T) {
	mockUsecase := mocks.NewMockContentUsecase()
	r := setupContentRouter(handler.NewContentHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content/counts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comments":5`)
}
