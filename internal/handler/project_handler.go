package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/pkg/middleware"
	"github.com/taskhub/taskhub-backend/pkg/response"
	"github.com/taskhub/taskhub-backend/pkg/telemetry"
)

// ProjectHandler handles project HTTP requests. The organization slug in
// the path scopes every operation.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create handles project creation
// POST /api/v1/organizations/:slug/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.project.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.projectService.Create(ctx, slug, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	countMutation(ctx, slug, "project.create")
	c.Set(middleware.ContextKeyAuditOrgSlug, slug)
	c.Set(middleware.ContextKeyAuditResourceID, result.ID)
	c.JSON(http.StatusCreated, response.Success(result))
}

// List handles listing the organization's projects with task counters
// GET /api/v1/organizations/:slug/projects
func (h *ProjectHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.project.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	result, err := h.projectService.List(ctx, slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles partial project updates
// PATCH /api/v1/organizations/:slug/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.project.update")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	id := c.Param("id")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.projectService.Update(ctx, id, slug, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	countMutation(ctx, slug, "project.update")
	c.Set(middleware.ContextKeyAuditOrgSlug, slug)
	c.Set(middleware.ContextKeyAuditResourceID, result.ID)
	c.JSON(http.StatusOK, response.Success(result))
}
