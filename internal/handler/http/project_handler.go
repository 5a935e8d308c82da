package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wuddevdet/platform-api/internal/handler/http/dto"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

type ProjectHandler struct {
	projectUsecase usecasecontract.IProjectUseCase
}

func NewProjectHandler(projectUsecase usecasecontract.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// ListProjects returns one page of the public portfolio
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	projects, total, err := h.projectUsecase.ListProjects(c.Request.Context(), page, limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load projects")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ProjectListResponse{
		Projects:   projects,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// GetProject returns one project with its creator populated
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectUsecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

// CreateProject stores a new portfolio entry. Admin-only route.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	project, err := h.projectUsecase.CreateProject(c.Request.Context(), user.ID, usecasecontract.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		TechStack:    req.TechStack,
		PrototypeURL: req.PrototypeURL,
		Image:        req.Image,
		Featured:     req.Featured,
	})
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, project)
}

// UpdateProject applies edits. Admin-only route.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TechStack != nil {
		updates["tech_stack"] = *req.TechStack
	}
	if req.PrototypeURL != nil {
		updates["prototype_url"] = *req.PrototypeURL
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	project, err := h.projectUsecase.UpdateProject(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

// DeleteProject removes a project. Admin-only route.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectUsecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		ErrorFromUsecase(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Project deleted")
}
