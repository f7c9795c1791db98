package repository

import (
	"context"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization; returns ErrDuplicateSlug when the
	// slug is already taken
	Create(ctx context.Context, org *domain.Organization) error
	// GetBySlug retrieves an organization by slug; (nil, nil) when absent
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	// ExistsBySlug checks if an organization exists with the given slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
