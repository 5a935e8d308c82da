package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for the user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	GetCurrentUser(*gin.Context)
	UpdateCurrentUser(*gin.Context)
	GetUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewUserHandler(authUsecase usecasecontract.IAuthUseCase) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
	}
}

// GetCurrentUser returns the authenticated user's own profile
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateCurrentUser applies profile edits for the authenticated user
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ProfilePic != nil {
		updates["profile_pic"] = *req.ProfilePic
	}

	updated, err := h.authUsecase.UpdateProfile(c.Request.Context(), user.ID, updates)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updated))
}

// GetUser returns a public profile by id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
