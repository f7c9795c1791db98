package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/pkg/logger"
	"github.com/taskhub/taskhub-backend/pkg/response"
	"github.com/taskhub/taskhub-backend/pkg/telemetry"
)

// respondServiceError maps service errors onto the response envelope.
// Validation problems carry their field details; not-found covers both
// missing and cross-tenant ids so the body never reveals which one it
// was; anything else is logged and answered opaquely. The error and the
// resulting status code are recorded on the active span.
func respondServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	telemetry.SetSpanError(ctx, err)

	var (
		status int
		resp   *response.Response
	)
	if ve, ok := service.AsValidationError(err); ok {
		status, resp = http.StatusBadRequest, response.ValidationFailed(ve.Details)
	} else {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			status, resp = http.StatusNotFound, response.NotFound("Organization not found")
		case errors.Is(err, service.ErrProjectNotFound):
			status, resp = http.StatusNotFound, response.NotFound("Project not found")
		case errors.Is(err, service.ErrTaskNotFound):
			status, resp = http.StatusNotFound, response.NotFound("Task not found")
		case errors.Is(err, service.ErrOrganizationExists):
			status, resp = http.StatusConflict, response.Conflict("Organization with this slug already exists")
		default:
			logger.WithContext(ctx).Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			status, resp = http.StatusInternalServerError, response.InternalError("Internal server error")
		}
	}

	telemetry.SetSpanAttributes(ctx, telemetry.StatusCodeAttr(status))
	c.JSON(status, resp)
}
