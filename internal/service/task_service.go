package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-backend/internal/domain"
	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// TaskService defines the interface for task operations, scoped by
// organization slug
type TaskService interface {
	// Create creates a task under a project of the organization
	Create(ctx context.Context, orgSlug string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	// List retrieves the organization's tasks, optionally filtered to one
	// project
	List(ctx context.Context, orgSlug, projectID string) ([]dto.TaskResponse, error)
	// Update applies a partial update to a task
	Update(ctx context.Context, id, orgSlug string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
}

// taskService implements TaskService
type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	orgRepo     repository.OrganizationRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, orgRepo repository.OrganizationRepository) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		orgRepo:     orgRepo,
	}
}

// Create creates a task. A project id that does not resolve to the
// organization causes no write and reads as a missing project.
func (s *taskService) Create(ctx context.Context, orgSlug string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if valid, details := req.Validate(); !valid {
		return nil, NewValidationError(details)
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	now := time.Now()
	task := &domain.Task{
		ID:            uuid.New().String(),
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       req.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.taskRepo.Create(ctx, orgSlug, task)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrProjectNotFound
	}

	resp := dto.NewTaskResponse(created)
	return &resp, nil
}

// List retrieves tasks for the organization. When a project filter is
// given it must resolve to the organization, otherwise the project reads
// as missing.
func (s *taskService) List(ctx context.Context, orgSlug, projectID string) ([]dto.TaskResponse, error) {
	if projectID != "" {
		project, err := s.projectRepo.GetByID(ctx, projectID, orgSlug)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, ErrProjectNotFound
		}
	} else {
		exists, err := s.orgRepo.ExistsBySlug(ctx, orgSlug)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrOrganizationNotFound
		}
	}

	tasks, err := s.taskRepo.ListByOrg(ctx, orgSlug, projectID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, dto.NewTaskResponse(task))
	}
	return resp, nil
}

// Update applies a partial update; only supplied fields change
func (s *taskService) Update(ctx context.Context, id, orgSlug string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if valid, details := req.Validate(); !valid {
		return nil, NewValidationError(details)
	}

	updated, err := s.taskRepo.Update(ctx, id, orgSlug, repository.TaskUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       req.DueDate,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}

	resp := dto.NewTaskResponse(updated)
	return &resp, nil
}
