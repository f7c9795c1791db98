package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-backend/internal/domain"
	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// CommentService defines the interface for task comment operations
type CommentService interface {
	// Create adds a comment to a task of the organization
	Create(ctx context.Context, orgSlug, taskID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	// ListByTask retrieves a task's comments oldest first
	ListByTask(ctx context.Context, taskID, orgSlug string) ([]dto.CommentResponse, error)
}

// commentService implements CommentService
type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// Create adds a comment. Validation runs before any storage access, so
// a rejected comment never reaches the table; a task id from another
// tenant inserts nothing and reads as a missing task.
func (s *commentService) Create(ctx context.Context, orgSlug, taskID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if valid, details := req.Validate(); !valid {
		return nil, NewValidationError(details)
	}

	comment := &domain.Comment{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
		CreatedAt:   time.Now(),
	}

	created, err := s.commentRepo.Create(ctx, orgSlug, comment)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrTaskNotFound
	}

	resp := dto.NewCommentResponse(created)
	return &resp, nil
}

// ListByTask retrieves the task's comments oldest first
func (s *commentService) ListByTask(ctx context.Context, taskID, orgSlug string) ([]dto.CommentResponse, error) {
	exists, err := s.commentRepo.TaskExists(ctx, taskID, orgSlug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	comments, err := s.commentRepo.ListByTask(ctx, taskID, orgSlug)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, dto.NewCommentResponse(comment))
	}
	return resp, nil
}
