package dto

import (
	"strings"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// CreateCommentRequest represents request to add a comment to a task
type CreateCommentRequest struct {
	Content     string `json:"content"`
	AuthorEmail string `json:"author_email"`
}

// Validate rejects whitespace-only content
func (r *CreateCommentRequest) Validate() (bool, map[string]string) {
	details := make(map[string]string)
	if strings.TrimSpace(r.Content) == "" {
		details["content"] = "must not be empty"
	}
	if !emailPattern.MatchString(r.AuthorEmail) {
		details["author_email"] = "must be a well-formed email address"
	}
	return len(details) == 0, details
}

// CommentResponse represents comment data in response
type CommentResponse struct {
	ID          string `json:"id"`
	TaskID      string `json:"task_id"`
	Content     string `json:"content"`
	AuthorEmail string `json:"author_email"`
	CreatedAt   string `json:"created_at"`
}

// NewCommentResponse converts a domain comment to its response form
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		TaskID:      c.TaskID,
		Content:     c.Content,
		AuthorEmail: c.AuthorEmail,
		CreatedAt:   c.CreatedAt.Format(timeFormat),
	}
}
