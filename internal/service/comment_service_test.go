package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhub/taskhub-backend/internal/dto"
)

func TestCommentService_Create(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	comment, err := env.comments.Create(context.Background(), "acme", task.ID, &dto.CreateCommentRequest{
		Content:     "Looks good to me",
		AuthorEmail: "reviewer@acme.example",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if comment.TaskID != task.ID {
		t.Errorf("TaskID = %q, want %q", comment.TaskID, task.ID)
	}
}

func TestCommentService_Create_EmptyContent_NoInsert(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := env.comments.Create(context.Background(), "acme", task.ID, &dto.CreateCommentRequest{
			Content:     content,
			AuthorEmail: "reviewer@acme.example",
		})
		if _, ok := AsValidationError(err); !ok {
			t.Errorf("Create(%q) error = %v, want ValidationError", content, err)
		}
	}

	comments, err := env.comments.ListByTask(context.Background(), task.ID, "acme")
	if err != nil {
		t.Fatalf("ListByTask() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("len(comments) = %d, want 0", len(comments))
	}
}

func TestCommentService_Create_CrossTenantTask(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	env.seedOrg(t, "globex")
	project := env.seedProject(t, "acme", "Acme Project")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	_, err := env.comments.Create(context.Background(), "globex", task.ID, &dto.CreateCommentRequest{
		Content:     "Sneaky comment",
		AuthorEmail: "spy@globex.example",
	})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Create() error = %v, want ErrTaskNotFound", err)
	}

	comments, err := env.comments.ListByTask(context.Background(), task.ID, "acme")
	if err != nil {
		t.Fatalf("ListByTask() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("len(comments) = %d, want 0", len(comments))
	}
}

func TestCommentService_ListByTask_OldestFirst(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	project := env.seedProject(t, "acme", "Website Redesign")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	for _, content := range []string{"first", "second", "third"} {
		if _, err := env.comments.Create(context.Background(), "acme", task.ID, &dto.CreateCommentRequest{
			Content:     content,
			AuthorEmail: "reviewer@acme.example",
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", content, err)
		}
	}

	comments, err := env.comments.ListByTask(context.Background(), task.ID, "acme")
	if err != nil {
		t.Fatalf("ListByTask() error = %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("len(comments) = %d, want 3", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Content != want {
			t.Errorf("comments[%d].Content = %q, want %q", i, comments[i].Content, want)
		}
	}
}

func TestCommentService_ListByTask_CrossTenant(t *testing.T) {
	env := newTestEnv()
	env.seedOrg(t, "acme")
	env.seedOrg(t, "globex")
	project := env.seedProject(t, "acme", "Acme Project")
	task := env.seedTask(t, "acme", project.ID, "Draft layout", "")

	_, err := env.comments.ListByTask(context.Background(), task.ID, "globex")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("ListByTask() error = %v, want ErrTaskNotFound", err)
	}
}
