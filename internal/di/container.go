package di

import (
	"github.com/taskhub/taskhub-backend/internal/handler"
	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/pkg/database"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB *database.PostgresDB

	// Repositories
	OrgRepo     repository.OrganizationRepository
	ProjectRepo repository.ProjectRepository
	TaskRepo    repository.TaskRepository
	CommentRepo repository.CommentRepository
	StatsRepo   repository.StatisticsRepository

	// Services
	OrgService     service.OrganizationService
	ProjectService service.ProjectService
	TaskService    service.TaskService
	CommentService service.CommentService
	StatsService   service.StatisticsService

	// Handlers
	HealthHandler       *handler.HealthHandler
	OrganizationHandler *handler.OrganizationHandler
	ProjectHandler      *handler.ProjectHandler
	TaskHandler         *handler.TaskHandler
	CommentHandler      *handler.CommentHandler
	StatisticsHandler   *handler.StatisticsHandler
}

// NewContainer creates a new dependency injection container over the
// given database
func NewContainer(db *database.PostgresDB) *Container {
	pool := db.Pool()

	c := &Container{
		DB:          db,
		OrgRepo:     repository.NewPostgresOrganizationRepository(pool),
		ProjectRepo: repository.NewPostgresProjectRepository(pool),
		TaskRepo:    repository.NewPostgresTaskRepository(pool),
		CommentRepo: repository.NewPostgresCommentRepository(pool),
		StatsRepo:   repository.NewPostgresStatisticsRepository(pool),
	}

	// Initialize services
	c.OrgService = service.NewOrganizationService(c.OrgRepo)
	c.ProjectService = service.NewProjectService(c.ProjectRepo, c.OrgRepo)
	c.TaskService = service.NewTaskService(c.TaskRepo, c.ProjectRepo, c.OrgRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo)
	c.StatsService = service.NewStatisticsService(c.StatsRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.OrganizationHandler = handler.NewOrganizationHandler(c.OrgService)
	c.ProjectHandler = handler.NewProjectHandler(c.ProjectService)
	c.TaskHandler = handler.NewTaskHandler(c.TaskService)
	c.CommentHandler = handler.NewCommentHandler(c.CommentService)
	c.StatisticsHandler = handler.NewStatisticsHandler(c.StatsService)

	return c
}
