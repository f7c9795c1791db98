package repository

import (
	"context"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// CommentRepository defines the interface for task comment data access
type CommentRepository interface {
	// Create inserts a comment under comment.TaskID, provided the task
	// resolves to the organization named by orgSlug through its project;
	// (nil, nil) otherwise, without writing anything
	Create(ctx context.Context, orgSlug string, comment *domain.Comment) (*domain.Comment, error)
	// ListByTask retrieves the task's comments ordered oldest first;
	// an absent or cross-tenant task yields (nil, nil) from TaskExists
	// callers, the list itself is empty in that case
	ListByTask(ctx context.Context, taskID, orgSlug string) ([]*domain.Comment, error)
	// TaskExists reports whether the task resolves to the organization
	TaskExists(ctx context.Context, taskID, orgSlug string) (bool, error)
}
