package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

type ContentHandler struct {
	contentUsecase usecasecontract.IContentUseCase
}

func NewContentHandler(contentUsecase usecasecontract.IContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUsecase: contentUsecase,
	}
}

// ListItems returns one page of the moderation table
func (h *ContentHandler) ListItems(c *gin.Context) {
	itemType := c.DefaultQuery("type", usecasecontract.ContentTypePosts)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.contentUsecase.ListItems(
		c.Request.Context(), itemType, c.Query("search"), c.Query("filter"), page, limit)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ContentListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// BulkAction applies one moderation action to a set of ids
func (h *ContentHandler) BulkAction(c *gin.Context) {
	var req dto.BulkActionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	count, err := h.contentUsecase.BulkAction(c.Request.Context(), req.ItemType, req.Action, req.IDs)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.BulkActionResponse{Count: count})
}

// Counts returns totals per content type
func (h *ContentHandler) Counts(c *gin.Context) {
	counts, err := h.contentUsecase.Counts(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load counts")
		return
	}
	SuccessHandler(c, http.StatusOK, counts)
}
