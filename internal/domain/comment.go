package domain

import "time"

// Comment represents an append-only comment on a task
type Comment struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}
