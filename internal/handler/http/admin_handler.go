package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	"github.com/wuddevdet/platform-api/internal/usecase"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for the admin handler to allow
// interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	ListUsers(*gin.Context)
	DeleteUser(*gin.Context)
	UpdateUserRole(*gin.Context)
}

// Ensure AdminHandler implements AdminHandlerInterface
var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	adminUsecase usecasecontract.IAdminUseCase
}

func NewAdminHandler(adminUsecase usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// ListUsers returns one page of the admin user table
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.ToUserResponse(*u))
	}
	SuccessHandler(c, http.StatusOK, dto.UserListResponse{
		Users:      responses,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// DeleteUser removes an account. Self-deletion is rejected with 400.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	err := h.adminUsecase.DeleteUser(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		if err.Error() == usecase.ErrMsgSelfDelete {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorFromUsecase(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}

// UpdateUserRole changes a user's role; only member|admin are accepted
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.adminUsecase.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
