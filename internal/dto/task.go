package dto

import (
	"time"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// CreateTaskRequest represents request to create a task within a project.
// Status defaults to TODO when omitted.
type CreateTaskRequest struct {
	ProjectID     string     `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	AssigneeEmail string     `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date"`
}

// Validate checks required fields, the title length limit, and the
// status enumeration when supplied
func (r *CreateTaskRequest) Validate() (bool, map[string]string) {
	details := make(map[string]string)
	if r.ProjectID == "" {
		details["project_id"] = "must not be empty"
	}
	if r.Title == "" {
		details["title"] = "must not be empty"
	} else if len(r.Title) > 200 {
		details["title"] = "must not exceed 200 characters"
	}
	if r.Status != "" && !domain.IsValidTaskStatus(r.Status) {
		details["status"] = "must be one of TODO, IN_PROGRESS, DONE"
	}
	if r.AssigneeEmail != "" && !emailPattern.MatchString(r.AssigneeEmail) {
		details["assignee_email"] = "must be a well-formed email address"
	}
	return len(details) == 0, details
}

// UpdateTaskRequest represents a partial task update; only supplied
// fields change
type UpdateTaskRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Status        *string    `json:"status"`
	AssigneeEmail *string    `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date"`
}

// Validate requires at least one field and a valid status when supplied
func (r *UpdateTaskRequest) Validate() (bool, map[string]string) {
	details := make(map[string]string)
	if r.Title == nil && r.Description == nil && r.Status == nil && r.AssigneeEmail == nil && r.DueDate == nil {
		details["fields"] = "at least one field must be provided for update"
	}
	if r.Title != nil {
		if *r.Title == "" {
			details["title"] = "must not be empty"
		} else if len(*r.Title) > 200 {
			details["title"] = "must not exceed 200 characters"
		}
	}
	if r.Status != nil && !domain.IsValidTaskStatus(*r.Status) {
		details["status"] = "must be one of TODO, IN_PROGRESS, DONE"
	}
	if r.AssigneeEmail != nil && *r.AssigneeEmail != "" && !emailPattern.MatchString(*r.AssigneeEmail) {
		details["assignee_email"] = "must be a well-formed email address"
	}
	return len(details) == 0, details
}

// ListTasksQuery represents query parameters for listing tasks
type ListTasksQuery struct {
	ProjectID string `form:"project_id" binding:"omitempty"`
}

// TaskResponse represents task data in response
type TaskResponse struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	AssigneeEmail string `json:"assignee_email,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// NewTaskResponse converts a domain task to its response form
func NewTaskResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:            t.ID,
		ProjectID:     t.ProjectID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		AssigneeEmail: t.AssigneeEmail,
		CreatedAt:     t.CreatedAt.Format(timeFormat),
		UpdatedAt:     t.UpdatedAt.Format(timeFormat),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(timeFormat)
	}
	return resp
}
