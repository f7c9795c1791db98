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

// OrganizationHandler handles organization HTTP requests
type OrganizationHandler struct {
	orgService service.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// Create handles organization creation
// POST /api/v1/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.organization.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.orgService.Create(ctx, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(result.Slug))
	countMutation(ctx, result.Slug, "organization.create")
	c.Set(middleware.ContextKeyAuditOrgSlug, result.Slug)
	c.Set(middleware.ContextKeyAuditResourceID, result.ID)
	c.JSON(http.StatusCreated, response.Success(result))
}

// GetBySlug handles retrieving an organization by slug
// GET /api/v1/organizations/:slug
func (h *OrganizationHandler) GetBySlug(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.organization.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	result, err := h.orgService.GetBySlug(ctx, slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
