package service

import (
	"context"
	"testing"

	"github.com/taskhub/taskhub-backend/internal/dto"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// testEnv wires every service over one shared in-memory store, the same
// shape the DI container builds over Postgres
type testEnv struct {
	store    *repository.MemoryStore
	orgs     OrganizationService
	projects ProjectService
	tasks    TaskService
	comments CommentService
	stats    StatisticsService
}

func newTestEnv() *testEnv {
	store := repository.NewMemoryStore()
	orgRepo := store.Organizations()
	projectRepo := store.Projects()
	taskRepo := store.Tasks()
	return &testEnv{
		store:    store,
		orgs:     NewOrganizationService(orgRepo),
		projects: NewProjectService(projectRepo, orgRepo),
		tasks:    NewTaskService(taskRepo, projectRepo, orgRepo),
		comments: NewCommentService(store.Comments()),
		stats:    NewStatisticsService(store.Statistics()),
	}
}

func (e *testEnv) seedOrg(t *testing.T, slug string) *dto.OrganizationResponse {
	t.Helper()
	org, err := e.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
		Name:         "Org " + slug,
		Slug:         slug,
		ContactEmail: slug + "@example.com",
	})
	if err != nil {
		t.Fatalf("seed organization %q: %v", slug, err)
	}
	return org
}

func (e *testEnv) seedProject(t *testing.T, orgSlug, name string) *dto.ProjectResponse {
	t.Helper()
	project, err := e.projects.Create(context.Background(), orgSlug, &dto.CreateProjectRequest{
		Name: name,
	})
	if err != nil {
		t.Fatalf("seed project %q: %v", name, err)
	}
	return project
}

func (e *testEnv) seedTask(t *testing.T, orgSlug, projectID, title, status string) *dto.TaskResponse {
	t.Helper()
	task, err := e.tasks.Create(context.Background(), orgSlug, &dto.CreateTaskRequest{
		ProjectID: projectID,
		Title:     title,
		Status:    status,
	})
	if err != nil {
		t.Fatalf("seed task %q: %v", title, err)
	}
	return task
}
