package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/taskhub/taskhub-backend/pkg/config"
	"github.com/taskhub/taskhub-backend/pkg/middleware"
)

// RouterConfig bundles everything the router needs
type RouterConfig struct {
	Config       *config.Config
	RedisClient  *redis.Client
	AuditLogger  *middleware.AuditLogger
	Organization *OrganizationHandler
	Project      *ProjectHandler
	Task         *TaskHandler
	Comment      *CommentHandler
	Statistics   *StatisticsHandler
	Health       *HealthHandler
}

// NewRouter builds the gin engine with the full middleware chain and all
// API routes
func NewRouter(rc RouterConfig) *gin.Engine {
	cfg := rc.Config
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	if cfg.OTel.Enabled {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimit.Enabled {
		rlConfig := middleware.DefaultRateLimitConfig()
		rlConfig.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rlConfig.BurstSize = cfg.RateLimit.BurstSize
		if rc.RedisClient != nil {
			rlConfig.UseRedis = true
			rlConfig.RedisClient = rc.RedisClient
		}
		router.Use(middleware.RateLimiter(rlConfig))
	}

	if rc.AuditLogger != nil {
		router.Use(middleware.Audit(rc.AuditLogger))
	}

	router.GET("/health", rc.Health.Live)
	router.GET("/health/ready", rc.Health.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/organizations", rc.Organization.Create)

		org := v1.Group("/organizations/:slug")
		{
			org.GET("", rc.Organization.GetBySlug)
			org.GET("/projects", rc.Project.List)
			org.POST("/projects", rc.Project.Create)
			org.PATCH("/projects/:id", rc.Project.Update)
			org.GET("/tasks", rc.Task.List)
			org.POST("/tasks", rc.Task.Create)
			org.PATCH("/tasks/:id", rc.Task.Update)
			org.GET("/tasks/:id/comments", rc.Comment.List)
			org.POST("/tasks/:id/comments", rc.Comment.Create)
			org.GET("/statistics", rc.Statistics.Get)
		}
	}

	return router
}
