package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-backend/internal/domain"
	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// OrganizationService defines the interface for organization operations
type OrganizationService interface {
	// Create creates a new organization (tenant)
	Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	// GetBySlug retrieves an organization by slug
	GetBySlug(ctx context.Context, slug string) (*dto.OrganizationResponse, error)
}

// organizationService implements OrganizationService
type organizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

// Create creates a new organization. The slug must be unique; conflicts
// surface as ErrOrganizationExists regardless of which concurrent
// request lost the race, because the unique index is the arbiter.
func (s *organizationService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if valid, details := req.Validate(); !valid {
		return nil, NewValidationError(details)
	}

	now := time.Now()
	org := &domain.Organization{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Slug:         req.Slug,
		ContactEmail: req.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrOrganizationExists
		}
		return nil, err
	}

	resp := dto.NewOrganizationResponse(org)
	return &resp, nil
}

// GetBySlug retrieves an organization by slug
func (s *organizationService) GetBySlug(ctx context.Context, slug string) (*dto.OrganizationResponse, error) {
	org, err := s.orgRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	resp := dto.NewOrganizationResponse(org)
	return &resp, nil
}
