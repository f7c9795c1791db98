package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/pkg/response"
	"github.com/taskhub/taskhub-backend/pkg/telemetry"
)

// StatisticsHandler handles completion statistics HTTP requests
type StatisticsHandler struct {
	statsService service.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsService: statsService}
}

// Get handles retrieving statistics for the organization, optionally
// narrowed to one project
// GET /api/v1/organizations/:slug/statistics?project_id=...
func (h *StatisticsHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.statistics.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	slug := c.Param("slug")
	projectID := c.Query("project_id")
	telemetry.SetSpanAttributes(ctx, telemetry.OrganizationAttr(slug))

	start := time.Now()
	result, err := h.statsService.GetStatistics(ctx, slug, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	recordStatsDuration(ctx, slug, float64(time.Since(start).Microseconds())/1000)

	c.JSON(http.StatusOK, response.Success(result))
}
