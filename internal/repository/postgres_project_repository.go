package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// PostgresProjectRepository implements ProjectRepository using PostgreSQL.
// Tenancy is enforced inside each statement: inserts select the owning
// organization by slug, updates join it, so the scope check and the write
// share one snapshot.
type PostgresProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
func NewPostgresProjectRepository(pool *pgxpool.Pool) *PostgresProjectRepository {
	return &PostgresProjectRepository{pool: pool}
}

// Create inserts the project under the organization named by slug
func (r *PostgresProjectRepository) Create(ctx context.Context, orgSlug string, project *domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO projects (id, organization_id, name, description, status, due_date, created_at, updated_at)
		SELECT $1, o.id, $2, $3, $4, $5, $6, $7
		FROM organizations o
		WHERE o.slug = $8
		RETURNING organization_id
	`
	err := r.pool.QueryRow(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.Status,
		project.DueDate,
		project.CreatedAt,
		project.UpdatedAt,
		orgSlug,
	).Scan(&project.OrganizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// GetByID retrieves a project scoped to the organization
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id, orgSlug string) (*domain.Project, error) {
	query := `
		SELECT p.id, p.organization_id, p.name, p.description, p.status, p.due_date, p.created_at, p.updated_at
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		WHERE p.id::text = $1 AND o.slug = $2
	`
	project := &domain.Project{}
	err := r.pool.QueryRow(ctx, query, id, orgSlug).Scan(
		&project.ID,
		&project.OrganizationID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.DueDate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// ListByOrg retrieves the organization's projects with task counters
// aggregated in the same query
func (r *PostgresProjectRepository) ListByOrg(ctx context.Context, orgSlug string) ([]*domain.ProjectSummary, error) {
	query := `
		SELECT p.id, p.organization_id, p.name, p.description, p.status, p.due_date, p.created_at, p.updated_at,
		       COUNT(t.id) AS task_count,
		       COUNT(t.id) FILTER (WHERE t.status = 'DONE') AS completed_tasks
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		LEFT JOIN tasks t ON t.project_id = p.id
		WHERE o.slug = $1
		GROUP BY p.id
		ORDER BY p.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, orgSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []*domain.ProjectSummary{}
	for rows.Next() {
		s := &domain.ProjectSummary{}
		if err := rows.Scan(
			&s.ID,
			&s.OrganizationID,
			&s.Name,
			&s.Description,
			&s.Status,
			&s.DueDate,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.TaskCount,
			&s.CompletedTasks,
		); err != nil {
			return nil, err
		}
		s.CompletionRate = domain.CompletionRate(s.CompletedTasks, s.TaskCount)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Update applies a partial update; absent fields keep their stored value
func (r *PostgresProjectRepository) Update(ctx context.Context, id, orgSlug string, update ProjectUpdate) (*domain.Project, error) {
	query := `
		UPDATE projects p SET
			name = COALESCE($1, p.name),
			description = COALESCE($2, p.description),
			status = COALESCE($3, p.status),
			due_date = COALESCE($4, p.due_date),
			updated_at = NOW()
		FROM organizations o
		WHERE p.id::text = $5 AND p.organization_id = o.id AND o.slug = $6
		RETURNING p.id, p.organization_id, p.name, p.description, p.status, p.due_date, p.created_at, p.updated_at
	`
	project := &domain.Project{}
	err := r.pool.QueryRow(ctx, query,
		update.Name,
		update.Description,
		update.Status,
		update.DueDate,
		id,
		orgSlug,
	).Scan(
		&project.ID,
		&project.OrganizationID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.DueDate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}
