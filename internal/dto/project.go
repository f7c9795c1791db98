package dto

import (
	"time"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

const timeFormat = time.RFC3339

// CreateProjectRequest represents request to create a project within an
// organization. Status defaults to ACTIVE when omitted.
type CreateProjectRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

// Validate checks the name length limit and the status enumeration
func (r *CreateProjectRequest) Validate() (bool, map[string]string) {
	details := make(map[string]string)
	if r.Name == "" {
		details["name"] = "must not be empty"
	} else if len(r.Name) > 200 {
		details["name"] = "must not exceed 200 characters"
	}
	if r.Status != "" && !domain.IsValidProjectStatus(r.Status) {
		details["status"] = "must be one of ACTIVE, COMPLETED, ON_HOLD"
	}
	return len(details) == 0, details
}

// UpdateProjectRequest represents a partial project update; only supplied
// fields change
type UpdateProjectRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

// Validate requires at least one field and a valid status when supplied
func (r *UpdateProjectRequest) Validate() (bool, map[string]string) {
	details := make(map[string]string)
	if r.Name == nil && r.Description == nil && r.Status == nil && r.DueDate == nil {
		details["fields"] = "at least one field must be provided for update"
	}
	if r.Name != nil {
		if *r.Name == "" {
			details["name"] = "must not be empty"
		} else if len(*r.Name) > 200 {
			details["name"] = "must not exceed 200 characters"
		}
	}
	if r.Status != nil && !domain.IsValidProjectStatus(*r.Status) {
		details["status"] = "must be one of ACTIVE, COMPLETED, ON_HOLD"
	}
	return len(details) == 0, details
}

// ProjectResponse represents project data in response, including the
// derived task counters
type ProjectResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	DueDate        string `json:"due_date,omitempty"`
	TaskCount      int    `json:"task_count"`
	CompletedTasks int    `json:"completed_tasks"`
	CompletionRate int    `json:"completion_rate"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// NewProjectResponse converts a domain project to its response form
func NewProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt.Format(timeFormat),
		UpdatedAt:      p.UpdatedAt.Format(timeFormat),
	}
	if p.DueDate != nil {
		resp.DueDate = p.DueDate.Format(timeFormat)
	}
	return resp
}

// NewProjectSummaryResponse converts a project summary, carrying the
// recomputed counters
func NewProjectSummaryResponse(s *domain.ProjectSummary) ProjectResponse {
	resp := NewProjectResponse(&s.Project)
	resp.TaskCount = s.TaskCount
	resp.CompletedTasks = s.CompletedTasks
	resp.CompletionRate = s.CompletionRate
	return resp
}

// StatisticsResponse represents the derived completion statistics
type StatisticsResponse struct {
	TotalProjects  int `json:"total_projects"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	ActiveTasks    int `json:"active_tasks"`
	CompletionRate int `json:"completion_rate"`
}

// NewStatisticsResponse converts domain statistics to response form
func NewStatisticsResponse(s domain.ProjectStatistics) StatisticsResponse {
	return StatisticsResponse(s)
}
