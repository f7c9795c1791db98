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

// TaskHandler handles task HTTP requests
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles task creation
// POST /api/v1/organizations/:slug/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.task.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.taskService.Create(ctx, slug, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	countMutation(ctx, slug, "task.create")
	c.Set(middleware.ContextKeyAuditOrgSlug, slug)
	c.Set(middleware.ContextKeyAuditResourceID, result.ID)
	c.JSON(http.StatusCreated, response.Success(result))
}

// List handles listing tasks, optionally filtered by project
// GET /api/v1/organizations/:slug/tasks?project_id=...
func (h *TaskHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.task.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.taskService.List(ctx, slug, query.ProjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles partial task updates
// PATCH /api/v1/organizations/:slug/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.task.update")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	id := c.Param("id")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.taskService.Update(ctx, id, slug, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	countMutation(ctx, slug, "task.update")
	c.Set(middleware.ContextKeyAuditOrgSlug, slug)
	c.Set(middleware.ContextKeyAuditResourceID, result.ID)
	c.JSON(http.StatusOK, response.Success(result))
}
