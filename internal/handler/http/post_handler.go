package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domaincontract "github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// PostHandlerInterface defines the methods for the post handler to allow
// interface-based dependency injection (for testing/mocking)
type PostHandlerInterface interface {
	ListPosts(*gin.Context)
	GetPost(*gin.Context)
	CreatePost(*gin.Context)
	UpdatePost(*gin.Context)
	DeletePost(*gin.Context)
	TogglePin(*gin.Context)
	AddComment(*gin.Context)
	DeleteComment(*gin.Context)
}

// Ensure PostHandler implements PostHandlerInterface
var _ PostHandlerInterface = (*PostHandler)(nil)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// ListPosts returns one page of the community feed
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page size")
		return
	}
	sort := c.Query("sort")
	if sort != "" && sort != "oldest" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid sort. Use 'oldest' or omit for default")
		return
	}

	opts := domaincontract.PostListOptions{
		Page:     page,
		Limit:    limit,
		Location: c.Query("location"),
		Sort:     sort,
	}
	posts, total, err := h.postUsecase.ListPosts(c.Request.Context(), opts)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PostListResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(opts.Page, opts.Limit, total),
	})
}

// GetPost returns one post with its comments
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

// CreatePost stores a new feed entry authored by the requester
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), user.ID, req.Title, req.Content, req.Location, req.EventDate)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}

// UpdatePost applies edits to a post. Ownership is enforced by the
// ResourceOwner middleware on the route.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}

	post, err := h.postUsecase.UpdatePost(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

// DeletePost removes a post. Ownership is enforced by the ResourceOwner
// middleware on the route.
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUsecase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Post deleted")
}

// TogglePin flips the pinned flag. Admin-only route.
func (h *PostHandler) TogglePin(c *gin.Context) {
	post, err := h.postUsecase.TogglePin(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

// AddComment appends a comment authored by the requester
func (h *PostHandler) AddComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	comment, err := h.postUsecase.AddComment(c.Request.Context(), c.Param("id"), user, req.Content)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}

// DeleteComment removes a comment; only its author or an admin may do so
func (h *PostHandler) DeleteComment(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	err := h.postUsecase.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"), user)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted")
}
