package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-backend/internal/domain"
	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// ProjectService defines the interface for project operations. Every
// method is scoped by organization slug; ids from other tenants behave
// exactly like unknown ids.
type ProjectService interface {
	// Create creates a project under the organization
	Create(ctx context.Context, orgSlug string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	// List retrieves the organization's projects with task counters
	List(ctx context.Context, orgSlug string) ([]dto.ProjectResponse, error)
	// Update applies a partial update to a project
	Update(ctx context.Context, id, orgSlug string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
}

// projectService implements ProjectService
type projectService struct {
	projectRepo repository.ProjectRepository
	orgRepo     repository.OrganizationRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, orgRepo repository.OrganizationRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		orgRepo:     orgRepo,
	}
}

// Create creates a project. The organization lookup and the insert are
// one repository call, so the tenancy check cannot race the write.
func (s *projectService) Create(ctx context.Context, orgSlug string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if valid, details := req.Validate(); !valid {
		return nil, NewValidationError(details)
	}

	status := req.Status
	if status == "" {
		status = domain.ProjectStatusActive
	}

	now := time.Now()
	project := &domain.Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projectRepo.Create(ctx, orgSlug, project)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrOrganizationNotFound
	}

	resp := dto.NewProjectResponse(created)
	return &resp, nil
}

// List retrieves the organization's projects; counters are recomputed
// from live task rows on every call
func (s *projectService) List(ctx context.Context, orgSlug string) ([]dto.ProjectResponse, error) {
	exists, err := s.orgRepo.ExistsBySlug(ctx, orgSlug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrganizationNotFound
	}

	summaries, err := s.projectRepo.ListByOrg(ctx, orgSlug)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ProjectResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp = append(resp, dto.NewProjectSummaryResponse(summary))
	}
	return resp, nil
}

// Update applies a partial update; only supplied fields change
func (s *projectService) Update(ctx context.Context, id, orgSlug string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if valid, details := req.Validate(); !valid {
		return nil, NewValidationError(details)
	}

	updated, err := s.projectRepo.Update(ctx, id, orgSlug, repository.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProjectNotFound
	}

	resp := dto.NewProjectResponse(updated)
	return &resp, nil
}
