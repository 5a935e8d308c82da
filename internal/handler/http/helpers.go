package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	"github.com/wuddevdet/platform-api/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// CurrentUser returns the authenticated user attached by the auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// statusForError maps usecase error messages onto HTTP status codes.
func statusForError(err error) int {
	switch err.Error() {
	case usecase.ErrMsgUserNotFound, usecase.ErrMsgPostNotFound,
		usecase.ErrMsgCommentNotFound, usecase.ErrMsgProjectNotFound,
		usecase.ErrMsgMessageNotFound:
		return http.StatusNotFound
	case usecase.ErrMsgInvalidCredentials:
		return http.StatusUnauthorized
	case usecase.ErrMsgForbidden, usecase.ErrMsgAccountSuspended:
		return http.StatusForbidden
	case usecase.ErrMsgEmailTaken:
		return http.StatusConflict
	case usecase.ErrMsgInternalServer:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// ErrorFromUsecase maps a usecase error to its HTTP response.
func ErrorFromUsecase(c *gin.Context, err error) {
	ErrorHandler(c, statusForError(err), err.Error())
}
