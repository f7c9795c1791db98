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

// CommentHandler handles task comment HTTP requests
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create handles adding a comment to a task
// POST /api/v1/organizations/:slug/tasks/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.comment.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	taskID := c.Param("id")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.commentService.Create(ctx, slug, taskID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	countMutation(ctx, slug, "comment.create")
	c.Set(middleware.ContextKeyAuditOrgSlug, slug)
	c.Set(middleware.ContextKeyAuditResourceID, result.ID)
	c.JSON(http.StatusCreated, response.Success(result))
}

// List handles listing a task's comments oldest first
// GET /api/v1/organizations/:slug/tasks/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.comment.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	taskID := c.Param("id")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	result, err := h.commentService.ListByTask(ctx, taskID, slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
