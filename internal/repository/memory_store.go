package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// MemoryStore is an in-memory implementation of the repository
// interfaces for testing. One store backs all entity repositories so the
// ownership chain can be resolved across tables, the same way the SQL
// implementations join through it.
type MemoryStore struct {
	mu       sync.RWMutex
	orgs     map[string]*domain.Organization // keyed by id
	projects map[string]*domain.Project
	tasks    map[string]*domain.Task
	comments map[string]*domain.Comment
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orgs:     make(map[string]*domain.Organization),
		projects: make(map[string]*domain.Project),
		tasks:    make(map[string]*domain.Task),
		comments: make(map[string]*domain.Comment),
	}
}

// Organizations returns the store's OrganizationRepository view
func (s *MemoryStore) Organizations() OrganizationRepository {
	return &memoryOrganizationRepository{store: s}
}

// Projects returns the store's ProjectRepository view
func (s *MemoryStore) Projects() ProjectRepository {
	return &memoryProjectRepository{store: s}
}

// Tasks returns the store's TaskRepository view
func (s *MemoryStore) Tasks() TaskRepository {
	return &memoryTaskRepository{store: s}
}

// Comments returns the store's CommentRepository view
func (s *MemoryStore) Comments() CommentRepository {
	return &memoryCommentRepository{store: s}
}

// Statistics returns the store's StatisticsRepository view
func (s *MemoryStore) Statistics() StatisticsRepository {
	return &memoryStatisticsRepository{store: s}
}

// orgBySlug resolves a slug under the read lock held by the caller
func (s *MemoryStore) orgBySlug(slug string) *domain.Organization {
	for _, org := range s.orgs {
		if org.Slug == slug {
			return org
		}
	}
	return nil
}

// projectInOrg resolves a project id within the slug's organization
func (s *MemoryStore) projectInOrg(id, slug string) *domain.Project {
	org := s.orgBySlug(slug)
	if org == nil {
		return nil
	}
	p, ok := s.projects[id]
	if !ok || p.OrganizationID != org.ID {
		return nil
	}
	return p
}

// taskInOrg resolves a task id through its project to the slug's
// organization
func (s *MemoryStore) taskInOrg(id, slug string) *domain.Task {
	t, ok := s.tasks[id]
	if !ok {
		return nil
	}
	if s.projectInOrg(t.ProjectID, slug) == nil {
		return nil
	}
	return t
}

type memoryOrganizationRepository struct {
	store *MemoryStore
}

func (r *memoryOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.orgBySlug(org.Slug) != nil {
		return ErrDuplicateSlug
	}
	copied := *org
	r.store.orgs[org.ID] = &copied
	return nil
}

func (r *memoryOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	org := r.store.orgBySlug(slug)
	if org == nil {
		return nil, nil
	}
	copied := *org
	return &copied, nil
}

func (r *memoryOrganizationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.orgBySlug(slug) != nil, nil
}

type memoryProjectRepository struct {
	store *MemoryStore
}

func (r *memoryProjectRepository) Create(ctx context.Context, orgSlug string, project *domain.Project) (*domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	org := r.store.orgBySlug(orgSlug)
	if org == nil {
		return nil, nil
	}
	copied := *project
	copied.OrganizationID = org.ID
	r.store.projects[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (r *memoryProjectRepository) GetByID(ctx context.Context, id, orgSlug string) (*domain.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p := r.store.projectInOrg(id, orgSlug)
	if p == nil {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memoryProjectRepository) ListByOrg(ctx context.Context, orgSlug string) ([]*domain.ProjectSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	org := r.store.orgBySlug(orgSlug)
	if org == nil {
		return []*domain.ProjectSummary{}, nil
	}

	summaries := []*domain.ProjectSummary{}
	for _, p := range r.store.projects {
		if p.OrganizationID != org.ID {
			continue
		}
		s := &domain.ProjectSummary{Project: *p}
		for _, t := range r.store.tasks {
			if t.ProjectID != p.ID {
				continue
			}
			s.TaskCount++
			if t.IsDone() {
				s.CompletedTasks++
			}
		}
		s.CompletionRate = domain.CompletionRate(s.CompletedTasks, s.TaskCount)
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (r *memoryProjectRepository) Update(ctx context.Context, id, orgSlug string, update ProjectUpdate) (*domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p := r.store.projectInOrg(id, orgSlug)
	if p == nil {
		return nil, nil
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	if update.DueDate != nil {
		due := *update.DueDate
		p.DueDate = &due
	}
	copied := *p
	return &copied, nil
}

type memoryTaskRepository struct {
	store *MemoryStore
}

func (r *memoryTaskRepository) Create(ctx context.Context, orgSlug string, task *domain.Task) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.projectInOrg(task.ProjectID, orgSlug) == nil {
		return nil, nil
	}
	copied := *task
	r.store.tasks[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (r *memoryTaskRepository) GetByID(ctx context.Context, id, orgSlug string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t := r.store.taskInOrg(id, orgSlug)
	if t == nil {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *memoryTaskRepository) ListByOrg(ctx context.Context, orgSlug, projectID string) ([]*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := []*domain.Task{}
	for _, t := range r.store.tasks {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		if r.store.projectInOrg(t.ProjectID, orgSlug) == nil {
			continue
		}
		copied := *t
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *memoryTaskRepository) Update(ctx context.Context, id, orgSlug string, update TaskUpdate) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t := r.store.taskInOrg(id, orgSlug)
	if t == nil {
		return nil, nil
	}
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.AssigneeEmail != nil {
		t.AssigneeEmail = *update.AssigneeEmail
	}
	if update.DueDate != nil {
		due := *update.DueDate
		t.DueDate = &due
	}
	copied := *t
	return &copied, nil
}

type memoryCommentRepository struct {
	store *MemoryStore
}

func (r *memoryCommentRepository) Create(ctx context.Context, orgSlug string, comment *domain.Comment) (*domain.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.taskInOrg(comment.TaskID, orgSlug) == nil {
		return nil, nil
	}
	copied := *comment
	r.store.comments[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (r *memoryCommentRepository) ListByTask(ctx context.Context, taskID, orgSlug string) ([]*domain.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.taskInOrg(taskID, orgSlug) == nil {
		return []*domain.Comment{}, nil
	}
	comments := []*domain.Comment{}
	for _, c := range r.store.comments {
		if c.TaskID != taskID {
			continue
		}
		copied := *c
		comments = append(comments, &copied)
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *memoryCommentRepository) TaskExists(ctx context.Context, taskID, orgSlug string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.taskInOrg(taskID, orgSlug) != nil, nil
}

type memoryStatisticsRepository struct {
	store *MemoryStore
}

func (r *memoryStatisticsRepository) GetStats(ctx context.Context, orgSlug, projectID string) (*StatsRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	org := r.store.orgBySlug(orgSlug)
	if org == nil {
		return nil, nil
	}

	row := &StatsRow{}
	for _, p := range r.store.projects {
		if p.OrganizationID != org.ID {
			continue
		}
		if projectID != "" && p.ID != projectID {
			continue
		}
		row.TotalProjects++
		for _, t := range r.store.tasks {
			if t.ProjectID != p.ID {
				continue
			}
			row.TotalTasks++
			if t.IsDone() {
				row.CompletedTasks++
			}
		}
	}
	return row, nil
}
