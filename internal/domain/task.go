package domain

import "time"

// Task represents a unit of work within a project
type Task struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"` // TODO, IN_PROGRESS, DONE
	AssigneeEmail string     `json:"assignee_email,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TaskStatus constants
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// IsValidTaskStatus checks whether s is a known task status
func IsValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// IsDone reports whether the task counts as completed for statistics
func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
