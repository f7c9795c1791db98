package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/taskhub/taskhub-backend/internal/domain"
	"github.com/taskhub/taskhub-backend/internal/dto"
)

func TestTaskService_Create_DefaultsToTodo(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")

	task, err := env.tasks.Create(context.Background(), "acme", &dto.CreateTaskRequest{
		ProjectID: project.ID,
		Title:     "Draft layout",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.Status != domain.TaskStatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, domain.TaskStatusTodo)
	}
}

func TestTaskService_Create_CrossTenantProject_NoWrite(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	env.seedOrg(t, "globex")
	project := env.seedProject(t, "acme", "Acme Project")

	_, err := env.tasks.Create(context.Background(), "globex", &dto.CreateTaskRequest{
		ProjectID: project.ID,
		Title:     "Sneaky task",
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("Create() error = %v, want ErrProjectNotFound", err)
	}

	// nothing may have been written under the owning tenant either
	tasks, err := env.tasks.List(context.Background(), "acme", project.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("len(tasks) = %d, want 0", len(tasks))
	}
}

func TestTaskService_Create_InvalidAssigneeEmail(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")

	_, err := env.tasks.Create(context.Background(), "acme", &dto.CreateTaskRequest{
		ProjectID:     project.ID,
		Title:         "Draft layout",
		AssigneeEmail: "not-an-email",
	})
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("Create() error = %v, want ValidationError", err)
	}
	if _, found := ve.Details["assignee_email"]; !found {
		t.Errorf("Details = %v, want assignee_email entry", ve.Details)
	}
}

func TestTaskService_Create_TitleTooLong(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")

	_, err := env.tasks.Create(context.Background(), "acme", &dto.CreateTaskRequest{
		ProjectID: project.ID,
		Title:     strings.Repeat("t", 201),
	})
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("Create() error = %v, want ValidationError", err)
	}
	if got := ve.Details["title"]; got != "must not exceed 200 characters" {
		t.Errorf("Details[title] = %q, want length limit message", got)
	}
}

func TestTaskService_List_FilterByProject(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	p1 := env.seedProject(t, "acme", "First")
	p2 := env.seedProject(t, "acme", "Second")
	env.seedTask(t, "acme", p1.ID, "In first", "")
	env.seedTask(t, "acme", p2.ID, "In second", "")

	tasks, err := env.tasks.List(context.Background(), "acme", p1.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}
	if tasks[0].Title != "In first" {
		t.Errorf("Title = %q, want %q", tasks[0].Title, "In first")
	}
}

func TestTaskService_List_AllProjects(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	p1 := env.seedProject(t, "acme", "First")
	p2 := env.seedProject(t, "acme", "Second")
	env.seedTask(t, "acme", p1.ID, "In first", "")
	env.seedTask(t, "acme", p2.ID, "In second", "")

	tasks, err := env.tasks.List(context.Background(), "acme", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("len(tasks) = %d, want 2", len(tasks))
	}
}

func TestTaskService_List_CrossTenantProject(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	env.seedOrg(t, "globex")
	project := env.seedProject(t, "acme", "Acme Project")

	_, err := env.tasks.List(context.Background(), "globex", project.ID)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("List() error = %v, want ErrProjectNotFound", err)
	}
}

func TestTaskService_Update_PartialMerge(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	status := domain.TaskStatusDone
	updated, err := env.tasks.Update(context.Background(), task.ID, "acme", &dto.UpdateTaskRequest{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != domain.TaskStatusDone {
		t.Errorf("Status = %q, want %q", updated.Status, domain.TaskStatusDone)
	}
	if updated.Title != "Draft layout" {
		t.Errorf("Title = %q, want unchanged %q", updated.Title, "Draft layout")
	}
}

func TestTaskService_Update_CrossTenant(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	env.seedOrg(t, "globex")
	project := env.seedProject(t, "acme", "Acme Project")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	title := "Hijacked"
	_, err := env.tasks.Update(context.Background(), task.ID, "globex", &dto.UpdateTaskRequest{
		Title: &title,
	})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update() error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskService_Update_InvalidStatus(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	status := "BLOCKED"
	_, err := env.tasks.Update(context.Background(), task.ID, "acme", &dto.UpdateTaskRequest{
		Status: &status,
	})
	if _, ok := AsValidationError(err); !ok {
		t.Errorf("Update() error = %v, want ValidationError", err)
	}
}
