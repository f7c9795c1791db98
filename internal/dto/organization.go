package dto

import (
	"regexp"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// CreateOrganizationRequest represents request to create a new organization
type CreateOrganizationRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contact_email"`
}

// Validate checks required fields, length limits, and field formats.
// It returns a map of field name to problem so callers can surface
// every violation at once.
func (r *CreateOrganizationRequest) Validate() (bool, map[string]string) {
	details := make(map[string]string)
	if r.Name == "" {
		details["name"] = "must not be empty"
	} else if len(r.Name) > 100 {
		details["name"] = "must not exceed 100 characters"
	}
	if !slugPattern.MatchString(r.Slug) {
		details["slug"] = "must contain only lowercase letters, numbers, and hyphens"
	} else if len(r.Slug) > 100 {
		details["slug"] = "must not exceed 100 characters"
	}
	if !emailPattern.MatchString(r.ContactEmail) {
		details["contact_email"] = "must be a well-formed email address"
	}
	return len(details) == 0, details
}

// OrganizationResponse represents organization data in response
type OrganizationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contact_email"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// NewOrganizationResponse converts a domain organization to its response form
func NewOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt.Format(timeFormat),
		UpdatedAt:    org.UpdatedAt.Format(timeFormat),
	}
}
