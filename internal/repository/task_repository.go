package repository

import (
	"context"
	"time"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// TaskUpdate carries a partial task update; nil fields keep their stored
// value
type TaskUpdate struct {
	Title         *string
	Description   *string
	Status        *string
	AssigneeEmail *string
	DueDate       *time.Time
}

// TaskRepository defines the interface for task data access, scoped by
// organization slug the same way as ProjectRepository.
type TaskRepository interface {
	// Create inserts a task under task.ProjectID, provided that project
	// belongs to the organization named by orgSlug; (nil, nil) otherwise.
	// The ownership check and the insert are one statement, so a
	// cross-tenant project id never causes a write.
	Create(ctx context.Context, orgSlug string, task *domain.Task) (*domain.Task, error)
	// GetByID retrieves a task scoped to the organization; (nil, nil)
	// when absent or cross-tenant
	GetByID(ctx context.Context, id, orgSlug string) (*domain.Task, error)
	// ListByOrg retrieves the organization's tasks, optionally filtered
	// to one project (projectID empty means all)
	ListByOrg(ctx context.Context, orgSlug, projectID string) ([]*domain.Task, error)
	// Update applies a partial update scoped to the organization; (nil,
	// nil) when absent or cross-tenant
	Update(ctx context.Context, id, orgSlug string, update TaskUpdate) (*domain.Task, error)
}
