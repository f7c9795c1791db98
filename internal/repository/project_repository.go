package repository

import (
	"context"
	"time"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// ProjectUpdate carries a partial project update; nil fields keep their
// stored value
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
	DueDate     *time.Time
}

// ProjectRepository defines the interface for project data access. Every
// method takes the organization slug and enforces it in the same
// statement as the read or write, so a cross-tenant id behaves exactly
// like a nonexistent one.
type ProjectRepository interface {
	// Create inserts a project under the organization named by orgSlug;
	// (nil, nil) when the organization does not exist
	Create(ctx context.Context, orgSlug string, project *domain.Project) (*domain.Project, error)
	// GetByID retrieves a project scoped to the organization; (nil, nil)
	// when absent or owned by another tenant
	GetByID(ctx context.Context, id, orgSlug string) (*domain.Project, error)
	// ListByOrg retrieves all projects of the organization with their
	// derived task counters
	ListByOrg(ctx context.Context, orgSlug string) ([]*domain.ProjectSummary, error)
	// Update applies a partial update scoped to the organization and
	// returns the updated row; (nil, nil) when absent or cross-tenant
	Update(ctx context.Context, id, orgSlug string, update ProjectUpdate) (*domain.Project, error)
}
