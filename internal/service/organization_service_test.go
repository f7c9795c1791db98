package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/taskhub/taskhub-backend/internal/dto"
)

func TestOrganizationService_Create(t *testing.T) {
	env := newTestEnv()

	org, err := env.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
		Name:         "Acme Corp",
		Slug:         "acme-corp",
		ContactEmail: "ops@acme.example",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if org.ID == "" {
		t.Error("Create() returned empty ID")
	}
	if org.Slug != "acme-corp" {
		t.Errorf("Slug = %q, want %q", org.Slug, "acme-corp")
	}
}

func TestOrganizationService_Create_InvalidSlug(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name string
		slug string
	}{
		{"uppercase", "Acme"},
		{"spaces", "acme corp"},
		{"underscore", "acme_corp"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
				Name:         "Acme",
				Slug:         tt.slug,
				ContactEmail: "ops@acme.example",
			})
			ve, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if _, found := ve.Details["slug"]; !found {
				t.Errorf("Details = %v, want slug entry", ve.Details)
			}
		})
	}
}

func TestOrganizationService_Create_NameTooLong(t *testing.T) {
	env := newTestEnv()

	_, err := env.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
		Name:         strings.Repeat("a", 101),
		Slug:         "acme",
		ContactEmail: "ops@acme.example",
	})
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("Create() error = %v, want ValidationError", err)
	}
	if got := ve.Details["name"]; got != "must not exceed 100 characters" {
		t.Errorf("Details[name] = %q, want length limit message", got)
	}
}

func TestOrganizationService_Create_InvalidEmail(t *testing.T) {
	env := newTestEnv()

	_, err := env.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
		Name:         "Acme",
		Slug:         "acme",
		ContactEmail: "not-an-email",
	})
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("Create() error = %v, want ValidationError", err)
	}
	if _, found := ve.Details["contact_email"]; !found {
		t.Errorf("Details = %v, want contact_email entry", ve.Details)
	}
}

func TestOrganizationService_Create_DuplicateSlug(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")

	_, err := env.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
		Name:         "Another Acme",
		Slug:         "acme",
		ContactEmail: "other@acme.example",
	})
	if !errors.Is(err, ErrOrganizationExists) {
		t.Errorf("Create() error = %v, want ErrOrganizationExists", err)
	}
}

func TestOrganizationService_GetBySlug(t *testing.T) {
	env := newTestEnv()
	seeded := env.seedOrg(t, "acme")

	org, err := env.orgs.GetBySlug(context.Background(), "acme")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if org.ID != seeded.ID {
		t.Errorf("ID = %q, want %q", org.ID, seeded.ID)
	}
}

func TestOrganizationService_GetBySlug_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.orgs.GetBySlug(context.Background(), "nope")
	if !errors.Is(err, ErrOrganizationNotFound) {
		t.Errorf("GetBySlug() error = %v, want ErrOrganizationNotFound", err)
	}
}
