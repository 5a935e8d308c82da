package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

type ContactHandler struct {
	contactUsecase usecasecontract.IContactUseCase
}

func NewContactHandler(contactUsecase usecasecontract.IContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// SubmitMessage accepts a guest inquiry. Public route.
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req dto.ContactRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	msg, err := h.contactUsecase.SubmitMessage(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, msg)
}

// ListMessages returns one page of the admin inbox
func (h *ContactHandler) ListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, total, err := h.contactUsecase.ListMessages(c.Request.Context(), page, limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MessageListResponse{
		Messages:   messages,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// ToggleResponded flips the responded flag of a message
func (h *ContactHandler) ToggleResponded(c *gin.Context) {
	msg, err := h.contactUsecase.ToggleResponded(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, msg)
}

// DeleteMessage removes a message from the inbox
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	if err := h.contactUsecase.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Message deleted")
}
