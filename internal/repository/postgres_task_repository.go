package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// PostgresTaskRepository implements TaskRepository using PostgreSQL
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// Create inserts the task when its project belongs to the organization;
// no rows are written otherwise
func (r *PostgresTaskRepository) Create(ctx context.Context, orgSlug string, task *domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (id, project_id, title, description, status, assignee_email, due_date, created_at, updated_at)
		SELECT $1, p.id, $2, $3, $4, $5, $6, $7, $8
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		WHERE p.id::text = $9 AND o.slug = $10
		RETURNING project_id
	`
	err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		nullStringOrValue(task.AssigneeEmail),
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
		task.ProjectID,
		orgSlug,
	).Scan(&task.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

// GetByID retrieves a task scoped to the organization
func (r *PostgresTaskRepository) GetByID(ctx context.Context, id, orgSlug string) (*domain.Task, error) {
	query := taskSelect + `
		WHERE t.id::text = $1 AND o.slug = $2
	`
	task := &domain.Task{}
	err := r.pool.QueryRow(ctx, query, id, orgSlug).Scan(taskFields(task)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

// ListByOrg retrieves the organization's tasks, optionally narrowed to
// one project
func (r *PostgresTaskRepository) ListByOrg(ctx context.Context, orgSlug, projectID string) ([]*domain.Task, error) {
	query := taskSelect + `
		WHERE o.slug = $1 AND ($2 = '' OR t.project_id::text = $2)
		ORDER BY t.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, orgSlug, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		task := &domain.Task{}
		if err := rows.Scan(taskFields(task)...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update applies a partial update; absent fields keep their stored value
func (r *PostgresTaskRepository) Update(ctx context.Context, id, orgSlug string, update TaskUpdate) (*domain.Task, error) {
	query := `
		UPDATE tasks t SET
			title = COALESCE($1, t.title),
			description = COALESCE($2, t.description),
			status = COALESCE($3, t.status),
			assignee_email = COALESCE($4, t.assignee_email),
			due_date = COALESCE($5, t.due_date),
			updated_at = NOW()
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		WHERE t.id::text = $6 AND t.project_id = p.id AND o.slug = $7
		RETURNING t.id, t.project_id, t.title, t.description, t.status,
		          COALESCE(t.assignee_email, ''), t.due_date, t.created_at, t.updated_at
	`
	task := &domain.Task{}
	err := r.pool.QueryRow(ctx, query,
		update.Title,
		update.Description,
		update.Status,
		update.AssigneeEmail,
		update.DueDate,
		id,
		orgSlug,
	).Scan(taskFields(task)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

const taskSelect = `
		SELECT t.id, t.project_id, t.title, t.description, t.status,
		       COALESCE(t.assignee_email, '') AS assignee_email, t.due_date, t.created_at, t.updated_at
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN organizations o ON o.id = p.organization_id
`

func taskFields(t *domain.Task) []interface{} {
	return []interface{}{
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.AssigneeEmail,
		&t.DueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}

// nullStringOrValue converts empty strings to NULL for nullable columns
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
