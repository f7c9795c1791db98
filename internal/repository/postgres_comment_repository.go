package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub-backend/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts the comment when its task resolves to the organization;
// no rows are written otherwise
func (r *PostgresCommentRepository) Create(ctx context.Context, orgSlug string, comment *domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO task_comments (id, task_id, content, author_email, created_at)
		SELECT $1, t.id, $2, $3, $4
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN organizations o ON o.id = p.organization_id
		WHERE t.id::text = $5 AND o.slug = $6
		RETURNING task_id
	`
	err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.Content,
		comment.AuthorEmail,
		comment.CreatedAt,
		comment.TaskID,
		orgSlug,
	).Scan(&comment.TaskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

// ListByTask retrieves the task's comments oldest first
func (r *PostgresCommentRepository) ListByTask(ctx context.Context, taskID, orgSlug string) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.task_id, c.content, c.author_email, c.created_at
		FROM task_comments c
		JOIN tasks t ON t.id = c.task_id
		JOIN projects p ON p.id = t.project_id
		JOIN organizations o ON o.id = p.organization_id
		WHERE t.id::text = $1 AND o.slug = $2
		ORDER BY c.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, taskID, orgSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Content, &c.AuthorEmail, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// TaskExists reports whether the task resolves to the organization
func (r *PostgresCommentRepository) TaskExists(ctx context.Context, taskID, orgSlug string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM tasks t
			JOIN projects p ON p.id = t.project_id
			JOIN organizations o ON o.id = p.organization_id
			WHERE t.id::text = $1 AND o.slug = $2
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, taskID, orgSlug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
