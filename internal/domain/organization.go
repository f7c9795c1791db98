package domain

import "time"

// Organization represents a tenant in the multi-tenant system. All
// projects, tasks, and comments belong to exactly one organization, and
// every scoped operation resolves to one via its slug.
type Organization struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
